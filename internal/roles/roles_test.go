package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffective(t *testing.T) {
	policy := Policy{AdminDomain: "amsa.mn", AdminLevel: 10}

	tests := []struct {
		name  string
		email string
		level int
		want  string
	}{
		{"domain admin with zero level", "a@amsa.mn", 0, Admin},
		{"domain admin with negative level", "b@amsa.mn", -1, Admin},
		{"domain match is case-insensitive", "C@AMSA.MN", 0, Admin},
		{"domain match survives whitespace", "  d@amsa.mn ", 0, Admin},
		{"level at threshold", "e@example.com", 10, Admin},
		{"level above threshold", "f@example.com", 99, Admin},
		{"level below threshold", "g@example.com", 9, Member},
		{"zero level outside domain", "h@example.com", 0, Member},
		{"subdomain does not match", "i@sub.amsa.mn", 0, Member},
		{"domain as suffix of another domain does not match", "j@notamsa.mn", 0, Member},
		{"empty email", "", 0, Member},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Effective(tt.email, tt.level))
		})
	}
}

func TestEffectiveEmptyDomainDisablesOverride(t *testing.T) {
	policy := Policy{AdminDomain: "", AdminLevel: 10}
	assert.Equal(t, Member, policy.Effective("a@amsa.mn", 0))
	assert.Equal(t, Admin, policy.Effective("a@amsa.mn", 10))
}
