package models

// ClinicSettings is the single row describing the clinic itself.
type ClinicSettings struct {
	BaseModel
	Name        string `gorm:"size:255" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	Phone       string `gorm:"size:50" json:"phone"`
	Email       string `gorm:"size:255" json:"email"`
	Website     string `gorm:"size:255" json:"website"`
	Description string `gorm:"type:text" json:"description"`
}

// NotificationSettings is the single row of reminder channel and timing
// toggles shown on the reminders page.
type NotificationSettings struct {
	BaseModel
	SMSEnabled      bool `gorm:"default:true" json:"smsEnabled"`
	EmailEnabled    bool `gorm:"default:true" json:"emailEnabled"`
	WhatsAppEnabled bool `gorm:"default:false" json:"whatsappEnabled"`
	Remind24h       bool `gorm:"default:true" json:"remind24h"`
	Remind2h        bool `gorm:"default:false" json:"remind2h"`
	Remind1h        bool `gorm:"default:false" json:"remind1h"`
}
