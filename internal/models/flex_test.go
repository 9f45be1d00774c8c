package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFlexIntAcceptsNumbersAndStrings(t *testing.T) {
	cases := map[string]int64{
		`101`:             101,
		`"101"`:           101,
		`" 7 "`:           7,
		`""`:              0,
		`null`:            0,
		`2.0`:             2,
		`"1700000000000"`: 1700000000000,
	}

	for in, want := range cases {
		var f FlexInt
		if err := json.Unmarshal([]byte(in), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if f.Int64() != want {
			t.Errorf("unmarshal %s: got %d want %d", in, f.Int64(), want)
		}
	}
}

func TestFlexIntRejectsGarbage(t *testing.T) {
	var f FlexInt
	if err := json.Unmarshal([]byte(`"abc"`), &f); err == nil {
		t.Fatal("expected error for non numeric string")
	}
}

func TestBookingDropsDismissField(t *testing.T) {
	raw := `{"id":1,"petId":"5","walkerId":101,"duration":"2","status":"pending","dismiss":{"x":1},"userId":9}`

	var b Booking
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.PetID != 5 || b.WalkerID != 101 || b.Duration != 2 {
		t.Fatalf("unexpected booking: %+v", b)
	}

	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "dismiss") {
		t.Errorf("dismiss leaked into %s", out)
	}
	if !strings.Contains(string(out), `"petId":5`) {
		t.Errorf("expected numeric petId in %s", out)
	}
}

func TestProviderOffers(t *testing.T) {
	p := Provider{Services: []string{"Paseos", "Entrenamiento Básico"}}
	if !p.Offers("Paseos") {
		t.Error("expected Paseos offered")
	}
	if p.Offers("paseos") {
		t.Error("service match must be exact")
	}
}
