package texture

import "image/color"

// Role identifies what a generated texture is used for within a level.
type Role string

const (
	RoleBackground Role = "background"
	RolePlatform   Role = "platform"
	RoleEnemy      Role = "enemy"
	RoleBoss       Role = "boss"
)

// AllRoles is ordered; generation and the on-disk fast-path check iterate it
// in this order so runs are reproducible.
var AllRoles = []Role{RoleBackground, RolePlatform, RoleEnemy, RoleBoss}

// RolesFor returns the roles a level needs. Only the final level carries a
// boss texture.
func RolesFor(level, numLevels int) []Role {
	roles := make([]Role, 0, len(AllRoles))
	for _, r := range AllRoles {
		if r == RoleBoss && level != numLevels {
			continue
		}
		roles = append(roles, r)
	}
	return roles
}

// BaseColor is the solid fallback color for a role, varied per level so
// placeholder-only runs still read as distinct levels.
func BaseColor(role Role, level int) color.RGBA {
	switch role {
	case RoleBackground:
		switch level {
		case 1:
			return color.RGBA{R: 25, G: 75, B: 180, A: 255}
		case 2:
			return color.RGBA{R: 70, G: 40, B: 120, A: 255}
		default:
			return color.RGBA{R: 20, G: 20, B: 50, A: 255}
		}
	case RolePlatform:
		switch level {
		case 1:
			return color.RGBA{R: 120, G: 80, B: 40, A: 255}
		case 2:
			return color.RGBA{R: 100, G: 100, B: 120, A: 255}
		default:
			return color.RGBA{R: 80, G: 40, B: 40, A: 255}
		}
	case RoleEnemy:
		switch level {
		case 1:
			return color.RGBA{R: 180, G: 60, B: 60, A: 255}
		case 2:
			return color.RGBA{R: 60, G: 160, B: 60, A: 255}
		default:
			return color.RGBA{R: 60, G: 60, B: 180, A: 255}
		}
	case RoleBoss:
		return color.RGBA{R: 200, G: 50, B: 200, A: 255}
	default:
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
}
