package audit

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
)

// Logger is a notification sink that appends each notification to the
// notification_logs table.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Send(n notify.Notification) error {
	log := models.NotificationLog{
		Title:         n.Title,
		Description:   n.Description,
		Variant:       string(n.Variant),
		CorrelationID: n.CorrelationID,
	}

	return l.db.Create(&log).Error
}

var _ notify.Sink = (*Logger)(nil)
