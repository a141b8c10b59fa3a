package domain

// CalisthenicsCategory groups skills by movement pattern.
type CalisthenicsCategory string

const (
	CategoryPush CalisthenicsCategory = "push"
	CategoryPull CalisthenicsCategory = "pull"
	CategoryLegs CalisthenicsCategory = "legs"
	CategoryCore CalisthenicsCategory = "core"
)

// CalisthenicsSkill is a static catalog entry. Unlock state lives on the
// player, not here.
type CalisthenicsSkill struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Level    int                  `json:"level"` // tier 1..5
	Category CalisthenicsCategory `json:"category"`
}

// CalisthenicsProgression is the fixed skill tree, ordered by category and tier.
var CalisthenicsProgression = []CalisthenicsSkill{
	{ID: "push_1", Name: "Flexão Inclinada", Level: 1, Category: CategoryPush},
	{ID: "push_2", Name: "Flexão Padrão", Level: 2, Category: CategoryPush},
	{ID: "push_3", Name: "Flexão Declinada", Level: 3, Category: CategoryPush},
	{ID: "push_4", Name: "Pike Pushup", Level: 4, Category: CategoryPush},
	{ID: "push_5", Name: "Archer Pushup", Level: 5, Category: CategoryPush},

	{ID: "pull_1", Name: "Remada na Argola", Level: 1, Category: CategoryPull},
	{ID: "pull_2", Name: "Remada Invertida", Level: 2, Category: CategoryPull},
	{ID: "pull_3", Name: "Chin-up", Level: 3, Category: CategoryPull},
	{ID: "pull_4", Name: "Pull-up", Level: 4, Category: CategoryPull},
	{ID: "pull_5", Name: "Muscle Up", Level: 5, Category: CategoryPull},

	{ID: "legs_1", Name: "Agachamento Caixa", Level: 1, Category: CategoryLegs},
	{ID: "legs_2", Name: "Squat Profundo", Level: 2, Category: CategoryLegs},
	{ID: "legs_3", Name: "Afundo Búlgaro", Level: 3, Category: CategoryLegs},
	{ID: "legs_4", Name: "Pistol Assistido", Level: 4, Category: CategoryLegs},
	{ID: "legs_5", Name: "Pistol Squat", Level: 5, Category: CategoryLegs},

	{ID: "core_1", Name: "Prancha", Level: 1, Category: CategoryCore},
	{ID: "core_2", Name: "Leg Raise Solo", Level: 2, Category: CategoryCore},
	{ID: "core_3", Name: "Hanging Knee Raise", Level: 3, Category: CategoryCore},
	{ID: "core_4", Name: "Toes to Bar", Level: 4, Category: CategoryCore},
	{ID: "core_5", Name: "Front Lever Tuck", Level: 5, Category: CategoryCore},
}

// SkillByID looks up a catalog entry. Returns nil when the id is unknown.
func SkillByID(id string) *CalisthenicsSkill {
	for i := range CalisthenicsProgression {
		if CalisthenicsProgression[i].ID == id {
			return &CalisthenicsProgression[i]
		}
	}
	return nil
}

// NextSkillInCategory returns the next-tier skill of the same category, or
// nil when the given skill is the final tier.
func NextSkillInCategory(id string) *CalisthenicsSkill {
	current := SkillByID(id)
	if current == nil {
		return nil
	}
	for i := range CalisthenicsProgression {
		s := &CalisthenicsProgression[i]
		if s.Category == current.Category && s.Level == current.Level+1 {
			return s
		}
	}
	return nil
}
