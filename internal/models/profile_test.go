package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorhub/socialgraph/internal/enum"
)

func TestProfileBeforeCreateAssignsID(t *testing.T) {
	profile := &Profile{
		UserID:       uuid.NewString(),
		MemberTypeID: enum.MemberTierBasic,
	}

	require.NoError(t, profile.BeforeCreate(nil))

	_, err := uuid.Parse(profile.ID)
	assert.NoError(t, err)
}

func TestProfileBeforeCreateRejectsUnknownTier(t *testing.T) {
	profile := &Profile{
		UserID:       uuid.NewString(),
		MemberTypeID: enum.MemberTierID("platinum"),
	}

	err := profile.BeforeCreate(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "platinum")
	assert.Empty(t, profile.ID)
}
