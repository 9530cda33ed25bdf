package mockapi

import (
	"fmt"
	"strings"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/util"
)

// normalizeProfile trims the payload and returns a user-facing reason when it
// cannot be accepted. An empty reason means the profile is valid. Only a
// missing field or a role outside the closed set is a rejection; phone and
// avatar are cleaned up on a best-effort basis.
func normalizeProfile(p Profile) (Profile, string) {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Category = strings.TrimSpace(p.Category)
	p.Role = domain.UserType(strings.TrimSpace(string(p.Role)))
	p.Avatar = strings.TrimSpace(p.Avatar)

	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Phone == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(p.Password) == "" {
		missing = append(missing, "password")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}
	if p.Role == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return p, "missing required fields: " + strings.Join(missing, ", ")
	}

	// Roles are case-sensitive so userType always echoes what was sent.
	if !p.Role.Valid() {
		return p, fmt.Sprintf("invalid role %q (allowed: company, business, professional)", p.Role)
	}
	if phone, err := util.NormalizeE164(p.Phone); err == nil {
		p.Phone = phone
	}
	if p.Avatar != "" && !strings.HasPrefix(p.Avatar, "data:image/") {
		p.Avatar = ""
	}
	return p, ""
}
