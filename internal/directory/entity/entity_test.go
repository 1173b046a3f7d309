package entity

import "testing"

func TestImageURL(t *testing.T) {
	str := func(s string) *string { return &s }
	tests := []struct {
		name  string
		image *string
		data  *string
		mime  *string
		want  string
	}{
		{name: "inline data wins", image: str("staff/a.jpg"), data: str("QUJD"), mime: str("image/png"), want: "data:image/png;base64,QUJD"},
		{name: "http upgraded", image: str("http://cdn.example.com/a.jpg"), want: "https://cdn.example.com/a.jpg"},
		{name: "https kept", image: str("https://cdn.example.com/a.jpg"), want: "https://cdn.example.com/a.jpg"},
		{name: "storage path", image: str("/staff/1/a.jpg"), want: "https://media.example.com/staff/1/a.jpg"},
		{name: "data without mime", image: str("staff/a.jpg"), data: str("QUJD"), want: "https://media.example.com/staff/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got := ImageURL(tt.image, tt.data, tt.mime, "https://media.example.com/")

			// Assert
			if got == nil || *got != tt.want {
				t.Fatalf("ImageURL() = %v, want %q", got, tt.want)
			}
		})
	}

	if ImageURL(nil, nil, nil, "https://media.example.com") != nil {
		t.Fatal("ImageURL() without image should be nil")
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Science Lab":            "science-lab",
		"  Café & Lounge  ":      "cafe-lounge",
		"Room #101 / North Wing": "room-101-north-wing",
		"---":                    "",
	}

	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKind_Label(t *testing.T) {
	if KindManagement.Label() != "Management member" || KindAcademicCouncil.Label() != "Academic council member" {
		t.Fatal("unexpected kind labels")
	}
}
