package domain

// SplitStrategy describes one of the preset training splits offered to the
// player, including the default weekday schedule fed to plan generation.
type SplitStrategy struct {
	Name        string        `json:"name"`
	Muscles     []MuscleGroup `json:"muscles"`
	Description string        `json:"description"`
	Frequency   string        `json:"frequency"`
	Schedule    string        `json:"schedule"`
	Volume      string        `json:"volume"`
	Rest        string        `json:"rest"`
	Technique   string        `json:"technique"`
	DefaultDays []string      `json:"defaultDays"`
}

// WorkoutSplits is the fixed catalog of training splits.
var WorkoutSplits = []SplitStrategy{
	{
		Name:        "Full Body (Iniciante)",
		Muscles:     []MuscleGroup{MuscleChest, MuscleBack, MuscleLegs, MuscleShoulders, MuscleArms, MuscleCore},
		Description: "Treine o corpo todo em uma única sessão. Perfeito para iniciantes ou quem tem poucos dias na semana para treinar.",
		Frequency:   "Alta Frequência (3-4x)",
		Schedule:    "Treina o corpo todo a cada sessão. Ideal para frequência 2x.",
		Volume:      "Volume Médio por sessão, Alto semanal.",
		Rest:        "1:30 a 2:00 minutos.",
		Technique:   "Foco na execução perfeita.",
		DefaultDays: []string{"Seg", "Qua", "Sex"},
	},
	{
		Name:        "Upper Body (Superior)",
		Muscles:     []MuscleGroup{MuscleChest, MuscleBack, MuscleShoulders, MuscleArms},
		Description: "Foco total na parte superior do corpo (Peito, Costas, Ombros e Braços) em uma única sessão.",
		Frequency:   "2x Semana",
		Schedule:    "Alternar com Lower Body para garantir estímulo 2x/semana.",
		Volume:      "Volume Moderado-Alto.",
		Rest:        "1:30 a 2:00 minutos.",
		Technique:   "Variar ângulos (Supino Reto + Acessórios Declinados).",
		DefaultDays: []string{"Seg", "Qui"},
	},
	{
		Name:        "Lower Body (Inferior)",
		Muscles:     []MuscleGroup{MuscleLegs, MuscleCore},
		Description: "Foco total na parte inferior do corpo (Pernas, Glúteos e Panturrilhas) em uma única sessão.",
		Frequency:   "2x Semana",
		Schedule:    "Alternar com Upper Body. Essencial para público feminino.",
		Volume:      "Volume Alto (Foco em Compostos e Glúteos).",
		Rest:        "2:00 a 3:00 minutos.",
		Technique:   "Alta intensidade.",
		DefaultDays: []string{"Ter", "Sex"},
	},
	{
		Name:        "ABC - Push (Empurrar)",
		Muscles:     []MuscleGroup{MuscleChest, MuscleShoulders, MuscleArms},
		Description: "Dia focado nos músculos que \"empurram\": Peito, Ombros e Tríceps.",
		Frequency:   "Sequencial (Rotativo)",
		Schedule:    "Treinar 6 dias para garantir 2x cada grupo.",
		Volume:      "Volume Alto localizado.",
		Rest:        "1:00 a 1:30 minutos.",
		Technique:   "Supino Reto pesado + Crucifixo Declinado.",
		DefaultDays: []string{"Seg", "Qui"},
	},
	{
		Name:        "ABC - Pull (Puxar)",
		Muscles:     []MuscleGroup{MuscleBack, MuscleArms},
		Description: "Dia focado nos músculos que \"puxam\": Costas, Trapézio, Bíceps e Antebraço.",
		Frequency:   "Sequencial (Rotativo)",
		Schedule:    "Treinar 6 dias para garantir 2x cada grupo.",
		Volume:      "Volume Alto.",
		Rest:        "1:30 minutos.",
		Technique:   "Contração de pico.",
		DefaultDays: []string{"Ter", "Sex"},
	},
	{
		Name:        "ABC - Legs (Pernas)",
		Muscles:     []MuscleGroup{MuscleLegs, MuscleCore},
		Description: "Dia dedicado exclusivamente ao treino completo de Pernas e Core.",
		Frequency:   "Sequencial (Rotativo)",
		Schedule:    "Treinar 6 dias para garantir 2x cada grupo.",
		Volume:      "Volume Brutal.",
		Rest:        "2:00 a 3:00 minutos.",
		Technique:   "Sobrecarga progressiva.",
		DefaultDays: []string{"Qua", "Sab"},
	},
	{
		Name:        "ABCD",
		Muscles:     []MuscleGroup{MuscleChest, MuscleBack, MuscleShoulders, MuscleLegs},
		Description: "Divisão avançada. Separa o corpo em 4 partes para máxima intensidade e foco em cada grupo muscular.",
		Frequency:   "Alta Intensidade (Ajuste para 2x)",
		Schedule:    "Sistema ajustará para garantir estímulo indireto 2x/sem.",
		Volume:      "Volume Máximo por sessão.",
		Rest:        "2:00 min.",
		Technique:   "Técnicas avançadas (Drop-set, Rest-pause).",
		DefaultDays: []string{"Seg", "Ter", "Qui", "Sex"},
	},
	{
		Name:        "Arnold - A (Peito/Costas)",
		Muscles:     []MuscleGroup{MuscleChest, MuscleBack, MuscleCore},
		Description: "A divisão clássica da Era de Ouro. Treine Peito e Costas (músculos antagonistas) no mesmo dia para um pump massivo.",
		Frequency:   "Alta Intensidade (6x/sem)",
		Schedule:    "Peito e Costas (Antagonistas).",
		Volume:      "Volume Muito Alto.",
		Rest:        "1:00 minuto (Supersets).",
		Technique:   "Pump máximo. Supino Reto + Declinados.",
		DefaultDays: []string{"Seg", "Qui"},
	},
	{
		Name:        "Arnold - B (Ombros/Braços)",
		Muscles:     []MuscleGroup{MuscleShoulders, MuscleArms},
		Description: "Foco total nos braços e ombros. Deltóides, Bíceps e Tríceps levados à exaustão.",
		Frequency:   "Alta Intensidade (6x/sem)",
		Schedule:    "Ombros e Braços.",
		Volume:      "Volume Alto.",
		Rest:        "1:00 minuto.",
		Technique:   "Isolamento estrito.",
		DefaultDays: []string{"Ter", "Sex"},
	},
	{
		Name:        "Arnold - C (Pernas)",
		Muscles:     []MuscleGroup{MuscleLegs},
		Description: "Dia focado exclusivamente em desenvolver pernas fortes e definidas.",
		Frequency:   "Alta Intensidade (6x/sem)",
		Schedule:    "Pernas.",
		Volume:      "Volume Alto.",
		Rest:        "2:00 minutos.",
		Technique:   "Alta intensidade.",
		DefaultDays: []string{"Qua", "Sab"},
	},
}
