package figma

import "testing"

func TestFileKeyFromArg(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{"bare key", "vS2meoG9vSHEtKuvqCUYGx", "vS2meoG9vSHEtKuvqCUYGx", false},
		{"file link", "https://www.figma.com/file/vS2meoG9vSHEtKuvqCUYGx/My-Design", "vS2meoG9vSHEtKuvqCUYGx", false},
		{"design link", "https://www.figma.com/design/KEY456/Another?node-id=1-2&t=abc", "KEY456", false},
		{"no host prefix", "figma.com/file/KEY789/x", "KEY789", false},
		{"proto link", "https://www.figma.com/proto/KEY000/x", "", true},
		{"recents link", "https://www.figma.com/files/recent", "", true},
		{"truncated link", "https://www.figma.com/file/", "", true},
		{"bare site", "https://www.figma.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FileKeyFromArg(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FileKeyFromArg(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FileKeyFromArg(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}
