package generator

import (
	"fmt"
	"strings"

	"systemfit/leveling-app/internal/domain"
)

// System instructions for the different generation surfaces. Kept in
// Portuguese because the whole product voice is pt-BR.
const (
	promptCoach = `Você é "O Sistema", uma inteligência artificial de fitness.
Sua diretriz principal agora é EDUCAÇÃO SIMPLIFICADA.
Responda a todas as perguntas de forma EXTREMAMENTE SIMPLES e DIDÁTICA.
Evite termos técnicos complexos ou "científicos demais" sem explicar claramente o significado.
Use analogias do dia-a-dia se necessário para facilitar o entendimento.
Aja como um mentor paciente ensinando um iniciante, mas mantenha a "persona" de Sistema Gamificado (interface, status).
Responda sempre em Português do Brasil.`

	promptWorkoutGen = `Você é "O Sistema". Crie um plano de treino OTIMIZADO.

REGRAS IMPERATIVAS:
1. **VARIEDADE TÁTICA**: Não repita sempre os mesmos exercícios básicos. Varie ângulos e equipamentos (Ex: Se o padrão é Supino Barra, sugira Halteres ou Máquina as vezes) para estimular novos músculos.
2. **MOBILIDADE OBRIGATÓRIA**: O treino DEVE começar com uma "Fase de Mobilidade". Gere 3 exercícios rápidos e simples que preparem as articulações específicas do treino.
3. **FREQUÊNCIA DE 2X**: Independente do split escolhido (ex: ABCD), adapte o volume ou adicione exercícios compostos para que cada grupo muscular principal receba estímulo pelo menos 2 vezes na semana (direta ou indiretamente).
4. **NÍVEL 30+ (MODO ELITE)**: Se nível >= 30, introduza técnicas brutais (Drop-sets, Rest-pause, Isometria).

Estrutura de Resposta para cada exercício:
- "technicalTips": Explicação biomecânica E técnica de intensidade (ex: falha, rest-pause).
- "restTime": Tempo EXATO.
- "grip": Tipo de pegada.
Use nomes em Português.`

	promptWorkoutStrength = `Você é "O Sistema". Crie um plano de FORÇA PURA (Powerlifting/Strength Focus).

OBJETIVO: Aumentar 1RM. Ciclo de 3 semanas.
MOBILIDADE: Essencial para evitar lesões com cargas altas.
CARACTERÍSTICAS:
- Repetições Baixas (3 a 6 reps).
- Carga Alta (80-90% 1RM).
- Descanso Longo (3 a 5 minutos).
- Foco em Exercícios Compostos (Supino, Agachamento, Terra, Militar).

Estrutura de Resposta para cada exercício:
- "reps": "3-5" ou "5x5".
- "restTime": "3min" a "5min".
- "technicalTips": Foco na tensão mecânica e explosão concêntrica.`

	promptSkillAnalysis = `Você é o banco de dados de combate do "Sistema". Forneça uma análise técnica da habilidade de calistenia solicitada.
Retorne um JSON com:
- "description": Resumo do objetivo e músculos envolvidos.
- "execution": Array de strings com 3 a 4 passos práticos e diretos.
- "technicalTips": Dicas de ouro.`

	promptImageAnalysis = "Analista de físico e postura de elite."
)

func workoutSystemInstruction(mode domain.TrainingFocus) string {
	if mode == domain.FocusStrength {
		return promptWorkoutStrength
	}
	return promptWorkoutGen
}

// buildWorkoutPrompt folds every request parameter into the user prompt.
func buildWorkoutPrompt(req PlanRequest) string {
	var freqText string
	switch req.Frequency {
	case FrequencyEveryOther:
		freqText = "Dia Sim, Dia Não."
	case FrequencyThreePerWeek:
		freqText = "3 Vezes por Semana."
	case FrequencySystemAuto:
		freqText = "A critério do Sistema."
	case FrequencyCustomSplit:
		freqText = fmt.Sprintf("Dias Fixos: %s.", strings.Join(req.PreferredDays, ", "))
	}
	if len(req.PreferredDays) > 0 {
		freqText += fmt.Sprintf(" (Agenda Definida: %s).", strings.Join(req.PreferredDays, ", "))
	}

	modeText := "Foco em HIPERTROFIA."
	if req.Mode == domain.FocusStrength {
		modeText = "MODO FORÇA (STRENGTH MODE)."
	}

	var volumeText string
	switch req.Volume {
	case VolumeLow:
		volumeText = "BAIXO VOLUME (HIT)."
	case VolumeHigh:
		volumeText = "ALTO VOLUME (Pump)."
	default:
		volumeText = "VOLUME OTIMIZADO."
	}

	genderText := "MASCULINO"
	if req.Gender == domain.GenderFemale {
		genderText = "FEMININO"
	}

	names := make([]string, len(req.Muscles))
	for i, m := range req.Muscles {
		names[i] = string(m)
	}

	return fmt.Sprintf(`Crie um treino OTIMIZADO para Nível %d.
Gênero: %s.
Alvo: %s.
Modo: %s
Volume: %s
Frequência: %s

INSTRUÇÕES:
1. Fase 1: MOBILIDADE (3 exercícios).
2. Fase 2: MUSCULAÇÃO.`,
		req.Level, genderText, strings.Join(names, ", "), modeText, volumeText, freqText)
}

// buildVisualizationPrompt frames an exercise description as a split-panel
// technical illustration in the product's visual language.
func buildVisualizationPrompt(subject string) string {
	return fmt.Sprintf(`Technical fitness illustration of: %s.
Layout: Split-panel composition (Side-by-side).
Left Panel: The STARTING position.
Right Panel: The ENDING position.
Style: "Solo Leveling" System UI holographic blueprint. Dark background, Neon Blue wireframe.
Details: Muscle groups highlighted RED.`, subject)
}
