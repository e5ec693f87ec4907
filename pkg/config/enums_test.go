package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionPolicyIsValid(t *testing.T) {
	tests := []struct {
		name   string
		policy ActionPolicy
		valid  bool
	}{
		{"off", PolicyOff, true},
		{"notify-only", PolicyNotifyOnly, true},
		{"full", PolicyFull, true},
		{"lowercase", ActionPolicy("full"), false},
		{"unknown", ActionPolicy("DISABLED"), false},
		{"empty", ActionPolicy(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.policy.IsValid())
		})
	}
}

func TestActionKindIsValid(t *testing.T) {
	tests := []struct {
		name  string
		kind  ActionKind
		valid bool
	}{
		{"disable-credential", ActionDisableCredential, true},
		{"revoke-network-ingress", ActionRevokeNetworkIngress, true},
		{"quarantine-instance", ActionQuarantineInstance, true},
		{"rotate-secret", ActionRotateSecret, true},
		{"block-address", ActionBlockAddress, true},
		{"none", ActionNone, true},
		{"lowercase", ActionKind("disable_credential"), false},
		{"unknown", ActionKind("TERMINATE_INSTANCE"), false},
		{"empty", ActionKind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.kind.IsValid())
		})
	}
}

func TestActionKindMutating(t *testing.T) {
	assert.True(t, ActionDisableCredential.Mutating())
	assert.True(t, ActionBlockAddress.Mutating())
	assert.False(t, ActionNone.Mutating())
	assert.False(t, ActionKind("BOGUS").Mutating())
}
