package model

import "time"

// OTPToken is a persisted one-time code bound to a phone number.
//
// Lifecycle: issued -> consumed (terminal) or issued -> expired (terminal).
// When several unconsumed, unexpired rows exist for one phone, the most
// recently created one is authoritative.
type OTPToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Phone     string    `json:"phone" gorm:"size:20;not null;index"`
	Code      string    `json:"-" gorm:"size:6;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Used      bool      `json:"used" gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"created_at"`
}
