package generation

import (
	"strings"

	"github.com/ktiva/ktiva-api/internal/domain"
)

// The prompt builder assembles the system instruction from fixed Hebrew
// clauses in a deterministic order: role base, type specialization,
// style, length (generation only), target audience, closing directive.
// Unknown enum values contribute an empty specialization clause instead
// of failing; the service layer validates enums before any prompt is
// built, so the fallback only matters for direct library callers.

const generationBaseClause = `אתה עוזר כתיבה מקצועי בשפה העברית.`

const improvementBaseClause = `אתה מומחה לשיפור טקסטים בעברית. המטרה שלך היא לשפר טקסטים קיימים ולהפוך אותם לעברית תקנית, מקצועית וברורה.`

const generationClosingClause = `כתוב את הטקסט בעברית תקנית, עם פיסוק נכון ומבנה ברור.`

const improvementClosingClause = `החזר את הטקסט המשופר בלבד, ללא הסברים נוספים.`

// typeClauses specializes the system instruction per text type.
var typeClauses = map[domain.TextType]string{
	domain.TextTypeLegal: `אתה מומחה לכתיבת מסמכים משפטיים בעברית. התמחותך כוללת:
- חוזים והסכמים
- צוואות וירושות
- כתבי תביעה והגנה
- מסמכים משפטיים רשמיים

השתמש בשפה משפטית מדויקת, תקנית ומקצועית. הקפד על:
- דיוק משפטי
- מבנה ברור ומובנה
- שפה רשמית ומכובדת
- פיסוק נכון ומדויק`,

	domain.TextTypeBusiness: `אתה מומחה לכתיבת מסמכים עסקיים בעברית. התמחותך כוללת:
- הצעות עסקיות
- דוחות ומצגות
- מכתבים רשמיים
- תוכניות עסקיות

השתמש בשפה מקצועית, ברורה ומשכנעת. הקפד על:
- מבנה לוגי וברור
- שפה מקצועית ומכובדת
- עובדות ונתונים מדויקים
- קריאות ונגישות`,

	domain.TextTypeAcademic: `אתה מומחה לכתיבת טקסטים אקדמיים בעברית. התמחותך כוללת:
- מאמרים מחקריים
- עבודות גמר ותזה
- סיכומים וביקורות
- פרסומים אקדמיים

השתמש בשפה מדעית, מדויקת ואובייקטיבית. הקפד על:
- דיוק מדעי ואקדמי
- מבנה מחקרי ברור
- ציטוטים ומקורות
- שפה אובייקטיבית ומקצועית`,

	domain.TextTypeCreative: `אתה מומחה לכתיבה יצירתית בעברית. התמחותך כוללת:
- סיפורים ושירה
- מאמרים אישיים
- בלוגים וכתבות
- תוכן יצירתי

השתמש בשפה עשירה, מעניינת ורגשית. הקפד על:
- יצירתיות ומקוריות
- שפה עשירה ומגוונת
- מבנה מעניין ומושך
- הבעה רגשית ואנושית`,

	domain.TextTypeTechnical: `אתה מומחה לכתיבת טקסטים טכניים בעברית. התמחותך כוללת:
- מדריכים והוראות
- תיעוד טכני
- מפרטים טכניים
- הוראות שימוש

השתמש בשפה ברורה, מדויקת ונגישה. הקפד על:
- דיוק טכני
- מבנה לוגי וברור
- שפה פשוטה ומובנת
- הוראות מדויקות ומובנות`,
}

// styleClauses adjusts the register of the generated text.
var styleClauses = map[domain.Style]string{
	domain.StyleFormal:       `השתמש בשפה רשמית ומכובדת, עם מבנה מסורתי ומכובד.`,
	domain.StyleCasual:       `השתמש בשפה פשוטה וידידותית, עם מבנה נינוח ונגיש.`,
	domain.StyleProfessional: `השתמש בשפה מקצועית ומדויקת, עם מבנה ברור ומאורגן.`,
	domain.StylePersuasive:   `השתמש בשפה משכנעת ומנומקת, עם מבנה שנועד לשכנע ולשנות דעות.`,
}

// lengthClauses sets the expected size of the generated text.
var lengthClauses = map[domain.Length]string{
	domain.LengthShort:  `כתוב טקסט קצר וממוקד, עם מידע חיוני בלבד.`,
	domain.LengthMedium: `כתוב טקסט באורך בינוני, עם פרטים רלוונטיים ומפורטים.`,
	domain.LengthLong:   `כתוב טקסט מפורט ומקיף, עם כל הפרטים הנדרשים והסברים מפורטים.`,
}

// improvementClauses focuses the improvement pass on one aspect of the
// text.
var improvementClauses = map[domain.ImprovementType]string{
	domain.ImprovementGrammar:       `התמקד בתיקון שגיאות דקדוק, פיסוק, ואיות. וודא שהטקסט עומד בכללי העברית התקנית.`,
	domain.ImprovementStyle:         `שפר את הסגנון והזרימה של הטקסט. השתמש בשפה עשירה ומגוונת יותר.`,
	domain.ImprovementClarity:       `התמקד בבהירות והבנה. וודא שהטקסט ברור וקל להבנה.`,
	domain.ImprovementProfessional:  `הפוך את הטקסט למקצועי יותר. השתמש בשפה רשמית ומכובדת.`,
	domain.ImprovementComprehensive: `בצע שיפור מקיף - דקדוק, סגנון, בהירות, ומקצועיות.`,
}

// BuildGenerationPrompt assembles the prompt pair for generating a new
// text. The same request always yields byte-identical output. It never
// fails: an unknown text type simply omits the specialization clause.
func BuildGenerationPrompt(req GenerationRequest) (systemInstruction, userContent string) {
	clauses := []string{generationBaseClause}

	if clause, ok := typeClauses[req.TextType]; ok {
		clauses = append(clauses, clause)
	}

	if req.Style != "" {
		if clause, ok := styleClauses[req.Style]; ok {
			clauses = append(clauses, clause)
		}
	}

	if req.Length != "" {
		if clause, ok := lengthClauses[req.Length]; ok {
			clauses = append(clauses, clause)
		}
	}

	if req.TargetAudience != "" {
		clauses = append(clauses, "קהל היעד: "+req.TargetAudience)
	}

	clauses = append(clauses, generationClosingClause)

	userContent = "בקשה: " + req.Prompt
	if req.Context != "" {
		userContent = "הקשר: " + req.Context + "\n\n" + userContent
	}

	return strings.Join(clauses, "\n\n"), userContent
}

// BuildImprovementPrompt assembles the prompt pair for improving an
// existing text. Deterministic and total, like BuildGenerationPrompt.
func BuildImprovementPrompt(req ImprovementRequest) (systemInstruction, userContent string) {
	clauses := []string{improvementBaseClause}

	if clause, ok := improvementClauses[req.ImprovementType]; ok {
		clauses = append(clauses, clause)
	}

	if req.TargetAudience != "" {
		clauses = append(clauses, "קהל היעד: "+req.TargetAudience)
	}

	if req.Context != "" {
		clauses = append(clauses, "הקשר: "+req.Context)
	}

	clauses = append(clauses, improvementClosingClause)

	return strings.Join(clauses, "\n\n"), "טקסט לשיפור:\n" + req.Text
}
