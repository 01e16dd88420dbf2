package model

import (
	"time"

	"gorm.io/gorm"
)

type Operation string

const (
	OpSyncToRemote   Operation = "SYNC_TO_REMOTE"
	OpSyncFromRemote Operation = "SYNC_FROM_REMOTE"
	OpGitPush        Operation = "GIT_PUSH"
	OpGitPull        Operation = "GIT_PULL"
	OpFullSync       Operation = "FULL_SYNC"
)

type History struct {
	gorm.Model
	Project   string    `gorm:"not null"`
	Operation Operation `gorm:"not null"`
	Outcome   Outcome   `gorm:"not null"`
	Detail    string
	RanAt     time.Time `gorm:"not null"`
}
