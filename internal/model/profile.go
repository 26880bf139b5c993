package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Timezone  string    `json:"timezone" db:"timezone"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ProfileSummary 活動回應中的 profile 摘要
type ProfileSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Timezone string    `json:"timezone"`
}

func (p *Profile) Summary() ProfileSummary {
	return ProfileSummary{ID: p.ID, Name: p.Name, Timezone: p.Timezone}
}

// CreateProfileRequest 建立 profile 請求
type CreateProfileRequest struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

// UpdateProfileTimezoneRequest 更新 profile 時區請求
type UpdateProfileTimezoneRequest struct {
	Timezone string `json:"timezone" binding:"required"`
}
