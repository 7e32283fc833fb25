package statline

import "testing"

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvReformatMode, "")
	t.Setenv(EnvStatusPrintMode, "")
	t.Setenv(EnvForceColor, "")

	cfg := ConfigFromEnv()
	if cfg.Reformat != ReformatNone {
		t.Errorf("Reformat = %v, want ReformatNone", cfg.Reformat)
	}
	if cfg.StatusPrint != StatusSingleLine {
		t.Errorf("StatusPrint = %v, want StatusSingleLine", cfg.StatusPrint)
	}
}

func TestConfigFromEnv_ReadsModes(t *testing.T) {
	tests := []struct {
		name       string
		reformat   string
		printMode  string
		wantRef    ReformatMode
		wantStatus StatusPrintMode
	}{
		{"pretty", "pretty", "", ReformatPretty, StatusSingleLine},
		{"multiline", "", "multiline", ReformatNone, StatusMultiLine},
		{"scrolling", "", "scrolling", ReformatNone, StatusScrolling},
		{"unknown values fall back", "fancy", "vertical", ReformatNone, StatusSingleLine},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvReformatMode, tc.reformat)
			t.Setenv(EnvStatusPrintMode, tc.printMode)

			cfg := ConfigFromEnv()
			if cfg.Reformat != tc.wantRef {
				t.Errorf("Reformat = %v, want %v", cfg.Reformat, tc.wantRef)
			}
			if cfg.StatusPrint != tc.wantStatus {
				t.Errorf("StatusPrint = %v, want %v", cfg.StatusPrint, tc.wantStatus)
			}
		})
	}
}

func TestConfigFromEnv_ForceColor(t *testing.T) {
	t.Setenv(EnvForceColor, "1")
	if !ConfigFromEnv().ForceColor {
		t.Error("CLICOLOR_FORCE=1 must force color")
	}

	// "0" is the documented opt-out value.
	t.Setenv(EnvForceColor, "0")
	if ConfigFromEnv().ForceColor {
		t.Error("CLICOLOR_FORCE=0 must not force color")
	}
}
