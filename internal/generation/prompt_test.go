package generation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/generation"
)

func TestBuildGenerationPrompt(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		req := generation.GenerationRequest{
			Prompt:         "כתוב חוזה שכירות לדירה",
			TextType:       domain.TextTypeLegal,
			Context:        "דירת שלושה חדרים בתל אביב",
			Style:          domain.StyleFormal,
			Length:         domain.LengthLong,
			TargetAudience: "עורכי דין",
		}

		system1, user1 := generation.BuildGenerationPrompt(req)
		system2, user2 := generation.BuildGenerationPrompt(req)

		assert.Equal(t, system1, system2)
		assert.Equal(t, user1, user2)
	})

	t.Run("assembles clauses in order", func(t *testing.T) {
		t.Parallel()

		system, _ := generation.BuildGenerationPrompt(generation.GenerationRequest{
			Prompt:         "בקשה",
			TextType:       domain.TextTypeLegal,
			Style:          domain.StyleFormal,
			Length:         domain.LengthShort,
			TargetAudience: "סטודנטים",
		})

		baseIdx := strings.Index(system, "אתה עוזר כתיבה מקצועי בשפה העברית.")
		typeIdx := strings.Index(system, "מסמכים משפטיים")
		styleIdx := strings.Index(system, "שפה רשמית ומכובדת")
		lengthIdx := strings.Index(system, "טקסט קצר וממוקד")
		audienceIdx := strings.Index(system, "קהל היעד: סטודנטים")
		closingIdx := strings.Index(system, "כתוב את הטקסט בעברית תקנית")

		assert.Equal(t, 0, baseIdx)
		assert.Greater(t, typeIdx, baseIdx)
		assert.Greater(t, styleIdx, typeIdx)
		assert.Greater(t, lengthIdx, styleIdx)
		assert.Greater(t, audienceIdx, lengthIdx)
		assert.Greater(t, closingIdx, audienceIdx)
	})

	t.Run("omits clauses for absent optionals", func(t *testing.T) {
		t.Parallel()

		system, _ := generation.BuildGenerationPrompt(generation.GenerationRequest{
			Prompt:   "בקשה",
			TextType: domain.TextTypeCreative,
		})

		assert.NotContains(t, system, "קהל היעד")
		assert.NotContains(t, system, "כתוב טקסט קצר")
		assert.Contains(t, system, "כתיבה יצירתית")
	})

	t.Run("unknown text type omits specialization without failing", func(t *testing.T) {
		t.Parallel()

		system, _ := generation.BuildGenerationPrompt(generation.GenerationRequest{
			Prompt:   "בקשה",
			TextType: domain.TextType("poetry"),
		})

		assert.True(t, strings.HasPrefix(system, "אתה עוזר כתיבה מקצועי בשפה העברית."))
		assert.Contains(t, system, "כתוב את הטקסט בעברית תקנית")
		assert.NotContains(t, system, "התמחותך")
	})

	t.Run("user content carries prompt with optional context prefix", func(t *testing.T) {
		t.Parallel()

		_, withoutContext := generation.BuildGenerationPrompt(generation.GenerationRequest{
			Prompt:   "כתוב מכתב",
			TextType: domain.TextTypeBusiness,
		})
		assert.Equal(t, "בקשה: כתוב מכתב", withoutContext)

		_, withContext := generation.BuildGenerationPrompt(generation.GenerationRequest{
			Prompt:   "כתוב מכתב",
			TextType: domain.TextTypeBusiness,
			Context:  "ללקוח ותיק",
		})
		assert.Equal(t, "הקשר: ללקוח ותיק\n\nבקשה: כתוב מכתב", withContext)
	})
}

func TestBuildImprovementPrompt(t *testing.T) {
	t.Parallel()

	t.Run("focuses on the improvement type", func(t *testing.T) {
		t.Parallel()

		system, user := generation.BuildImprovementPrompt(generation.ImprovementRequest{
			Text:            "טקסט עם שגיאות",
			ImprovementType: domain.ImprovementGrammar,
		})

		assert.True(t, strings.HasPrefix(system, "אתה מומחה לשיפור טקסטים בעברית."))
		assert.Contains(t, system, "תיקון שגיאות דקדוק")
		assert.Contains(t, system, "החזר את הטקסט המשופר בלבד")
		assert.Equal(t, "טקסט לשיפור:\nטקסט עם שגיאות", user)
	})

	t.Run("includes audience and context when provided", func(t *testing.T) {
		t.Parallel()

		system, _ := generation.BuildImprovementPrompt(generation.ImprovementRequest{
			Text:            "טקסט",
			ImprovementType: domain.ImprovementProfessional,
			TargetAudience:  "מנהלים",
			Context:         "דוח רבעוני",
		})

		assert.Contains(t, system, "קהל היעד: מנהלים")
		assert.Contains(t, system, "הקשר: דוח רבעוני")
	})

	t.Run("unknown improvement type omits focus clause", func(t *testing.T) {
		t.Parallel()

		system, _ := generation.BuildImprovementPrompt(generation.ImprovementRequest{
			Text:            "טקסט",
			ImprovementType: domain.ImprovementType("speed"),
		})

		assert.Contains(t, system, "החזר את הטקסט המשופר בלבד")
		assert.NotContains(t, system, "התמקד")
	})
}
