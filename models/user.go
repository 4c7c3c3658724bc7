package models

import "time"

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleMember, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	TokenIdentifier string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	Name            string          `gorm:"type:varchar(100)" json:"name"`
	Avatar          string          `gorm:"type:varchar(500)" json:"avatar"`
	PersonalOrg     string          `gorm:"type:varchar(255);index" json:"personal_org"`
	Memberships     []OrgMembership `gorm:"foreignKey:UserID" json:"memberships"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrgMembership links a user to an organization with a role. The unique
// index keeps at most one row per (user, org) pair.
type OrgMembership struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uk_user_org,priority:1;index" json:"user_id"`
	OrgID     string    `gorm:"type:varchar(255);not null;uniqueIndex:uk_user_org,priority:2;index" json:"org_id"`
	Role      Role      `gorm:"type:varchar(10);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrgMembership) TableName() string {
	return "org_memberships"
}

// MembershipFor returns the user's role in the given organization.
func (u *User) MembershipFor(orgID string) (Role, bool) {
	for _, m := range u.Memberships {
		if m.OrgID == orgID {
			return m.Role, true
		}
	}
	return "", false
}
