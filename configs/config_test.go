package configs

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultsLoaded(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"LabManager.Port", Defaults.LabManager.Port, 443},
		{"LabManager.PublicPath", Defaults.LabManager.PublicPath, "/LabManager/SOAP/LabManager.asmx"},
		{"LabManager.InternalPath", Defaults.LabManager.InternalPath, "/LabManager/SOAP/LabManagerInternal.asmx"},
		{"LabManager.Namespace", Defaults.LabManager.Namespace, "http://vmware.com/labmanager"},
		{"Timeouts.RequestSeconds", Defaults.Timeouts.RequestSeconds, 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestRequestTimeoutConversion(t *testing.T) {
	if got := Defaults.Timeouts.Request(); got != time.Hour {
		t.Errorf("Request() = %v, want %v", got, time.Hour)
	}
}

func TestEndpointPathsAbsolute(t *testing.T) {
	for _, p := range []string{Defaults.LabManager.PublicPath, Defaults.LabManager.InternalPath} {
		if !strings.HasPrefix(p, "/") {
			t.Errorf("endpoint path %q is not absolute", p)
		}
	}
}
