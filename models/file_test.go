package models

import "testing"

func TestFileTypeFromMIME(t *testing.T) {
	cases := []struct {
		mime string
		want FileType
		ok   bool
	}{
		{"image/png", FileTypeImage, true},
		{"image/jpeg", FileTypeImage, true},
		{"image/svg+xml", FileTypeImage, true},
		{"application/pdf", FileTypePDF, true},
		{"text/csv", FileTypeCSV, true},
		{"video/mp4", "", false},
		{"application/octet-stream", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := FileTypeFromMIME(tc.mime)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("FileTypeFromMIME(%q) = %v, %v; want %v, %v", tc.mime, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseFileType(t *testing.T) {
	if ft, ok := ParseFileType("pdf"); !ok || ft != FileTypePDF {
		t.Fatalf("ParseFileType(pdf) = %v, %v", ft, ok)
	}
	if _, ok := ParseFileType("spreadsheet"); ok {
		t.Fatal("unknown type must not parse")
	}
}

func TestMembershipFor(t *testing.T) {
	user := User{Memberships: []OrgMembership{
		{OrgID: "org_1", Role: RoleMember},
		{OrgID: "org_2", Role: RoleAdmin},
	}}

	role, ok := user.MembershipFor("org_2")
	if !ok || role != RoleAdmin {
		t.Fatalf("MembershipFor(org_2) = %v, %v", role, ok)
	}
	if _, ok := user.MembershipFor("org_3"); ok {
		t.Fatal("expected absent membership")
	}
}
