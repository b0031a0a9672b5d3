package texture

import (
	"image"
	"testing"
)

func TestPlaceholderDimensions(t *testing.T) {
	for _, size := range []int{16, 64, 256} {
		img := Placeholder(RolePlatform, 1, size)
		if got := img.Bounds(); got != image.Rect(0, 0, size, size) {
			t.Fatalf("size %d: bounds = %v", size, got)
		}
	}
}

func TestPlaceholderBaseColors(t *testing.T) {
	tests := []struct {
		name  string
		role  Role
		level int
		x, y  int
	}{
		{"background_level_1", RoleBackground, 1, 0, 15},
		{"background_level_2", RoleBackground, 2, 0, 15},
		{"background_level_late", RoleBackground, 4, 0, 15},
		{"platform_level_1", RolePlatform, 1, 5, 5},
		{"enemy_level_2", RoleEnemy, 2, 0, 0},
		{"boss_any_level", RoleBoss, 3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Placeholder(tt.role, tt.level, 64)
			want := BaseColor(tt.role, tt.level)
			if got := img.RGBAAt(tt.x, tt.y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want base color %v", tt.x, tt.y, got, want)
			}
		})
	}
}

func TestPlaceholderRolePatternsDiffer(t *testing.T) {
	// Same level and size, different roles: the procedural patterns must
	// make the images distinguishable beyond the base color.
	bg := Placeholder(RoleBackground, 3, 64)
	enemy := Placeholder(RoleEnemy, 3, 64)

	// Enemy discs are centered; backgrounds have horizontal bands at the top.
	if bg.RGBAAt(32, 32) == enemy.RGBAAt(32, 32) && bg.RGBAAt(0, 5) == enemy.RGBAAt(0, 5) {
		t.Fatalf("background and enemy placeholders are indistinguishable")
	}
}

func TestPlaceholderPerLevelVariation(t *testing.T) {
	l1 := Placeholder(RoleEnemy, 1, 32)
	l2 := Placeholder(RoleEnemy, 2, 32)
	if l1.RGBAAt(0, 0) == l2.RGBAAt(0, 0) {
		t.Fatalf("enemy placeholder base color should vary per level")
	}
}

func TestRolesFor(t *testing.T) {
	tests := []struct {
		level, numLevels int
		wantBoss         bool
		wantLen          int
	}{
		{1, 3, false, 3},
		{2, 3, false, 3},
		{3, 3, true, 4},
		{1, 1, true, 4},
	}
	for _, tt := range tests {
		roles := RolesFor(tt.level, tt.numLevels)
		if len(roles) != tt.wantLen {
			t.Fatalf("RolesFor(%d,%d) has %d roles, want %d", tt.level, tt.numLevels, len(roles), tt.wantLen)
		}
		var hasBoss bool
		for _, r := range roles {
			if r == RoleBoss {
				hasBoss = true
			}
		}
		if hasBoss != tt.wantBoss {
			t.Fatalf("RolesFor(%d,%d) boss = %v, want %v", tt.level, tt.numLevels, hasBoss, tt.wantBoss)
		}
	}
}
