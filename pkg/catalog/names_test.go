package catalog

import "testing"

func TestSpellName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"042_Fireball.pdf", "fireball"},
		{"7_Magic Missile.pdf", "magic missile"},
		{"_Shield.pdf", "shield"},
		{"Counterspell.pdf", "counterspell"},
		{"cards/042_Fireball.pdf", "fireball"},
		{"!cover.pdf", ""},
		{"notes.txt", ""},
	}

	for _, tt := range tests {
		if got := SpellName(tt.path); got != tt.want {
			t.Errorf("SpellName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMonsterName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"Goblin (S).pdf", "goblin"},
		{"Adult Red Dragon (L).pdf", "adult red dragon"},
		{"Owlbear.pdf", "owlbear"},
		{"Tarrasque (XL).pdf", "tarrasque (xl)"}, // only (L) and (S) are designators
		{"!readme.pdf", ""},
		{"Goblin (S).png", ""},
	}

	for _, tt := range tests {
		if got := MonsterName(tt.path); got != tt.want {
			t.Errorf("MonsterName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestPlainName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"Magic Missile.pdf", "magic missile"},
		{"042_Fireball.pdf", "042_fireball"}, // no prefix stripping
		{"dir/Card.pdf", "card"},
		{"card.PDF", ""}, // extension match is exact
		{"!helper.pdf", ""},
	}

	for _, tt := range tests {
		if got := PlainName(tt.path); got != tt.want {
			t.Errorf("PlainName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRuleByName(t *testing.T) {
	if got := RuleByName(RuleSpell)("042_Fireball.pdf"); got != "fireball" {
		t.Errorf("spell rule: got %q", got)
	}
	if got := RuleByName(RuleMonster)("Goblin (S).pdf"); got != "goblin" {
		t.Errorf("monster rule: got %q", got)
	}
	if got := RuleByName("anything-else")("042_Fireball.pdf"); got != "042_fireball" {
		t.Errorf("default rule should be plain, got %q", got)
	}
}
