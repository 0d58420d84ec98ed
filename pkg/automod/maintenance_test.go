package automod

import (
	"testing"

	"github.com/PancyStudios/SentinelBotGo/pkg/models"
)

func TestIsSuppressed(t *testing.T) {
	tests := []struct {
		name        string
		maintenance bool
		privileged  bool
		want        bool
	}{
		{"maintenance on, regular member", true, false, true},
		{"maintenance on, privileged member", true, true, false},
		{"maintenance off, regular member", false, false, false},
		{"maintenance off, privileged member", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.DefaultPolicy("g1")
			p.MaintenanceMode = tt.maintenance

			if got := IsSuppressed(p, tt.privileged); got != tt.want {
				t.Errorf("IsSuppressed = %v, want %v", got, tt.want)
			}
		})
	}
}
