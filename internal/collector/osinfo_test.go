package collector

import "testing"

const osReleaseFixture = `NAME="Ubuntu"
VERSION="22.04.4 LTS (Jammy Jellyfish)"
ID=ubuntu
ID_LIKE=debian
PRETTY_NAME="Ubuntu 22.04.4 LTS"
VERSION_ID="22.04"
HOME_URL="https://www.ubuntu.com/"

# trailing comment
`

func TestOSReleaseName(t *testing.T) {
	name, version := osReleaseName(osReleaseFixture)
	if name != "Ubuntu 22.04.4 LTS" {
		t.Errorf("name = %q, want pretty name", name)
	}
	if version != "22.04" {
		t.Errorf("version = %q, want 22.04", version)
	}
}

func TestOSReleaseName_NoPrettyName(t *testing.T) {
	name, version := osReleaseName("NAME=\"Alpine Linux\"\nVERSION_ID=3.19.1\n")
	if name != "Alpine Linux" {
		t.Errorf("name = %q, want NAME fallback", name)
	}
	if version != "3.19.1" {
		t.Errorf("version = %q, want 3.19.1", version)
	}
}

func TestParseKeyValueFile(t *testing.T) {
	fields := parseKeyValueFile("A=1\n# comment\n\nB=two=parts\n  C=3  \nnot_a_pair\n")

	if fields["A"] != "1" {
		t.Errorf("A = %q, want 1", fields["A"])
	}
	if fields["B"] != "two=parts" {
		t.Errorf("B = %q, want value split only on first =", fields["B"])
	}
	if fields["C"] != "3" {
		t.Errorf("C = %q, want trimmed key", fields["C"])
	}
	if _, ok := fields["not_a_pair"]; ok {
		t.Error("lines without = must be skipped")
	}
}
