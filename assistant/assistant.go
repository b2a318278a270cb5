// Package assistant answers canned back-office questions from already-loaded
// aggregate data. It matches keywords against an ordered rule set — first
// match wins — and is deliberately not a learning system.
package assistant

import (
	"fmt"
	"strings"

	"restaurant-pos-api/i18n"
	"restaurant-pos-api/models"
	"restaurant-pos-api/pos"
	"restaurant-pos-api/stock"

	"github.com/shopspring/decimal"
)

// Snapshot is the pre-fetched data a reply is built from. Callers load it
// once per question; rules never hit the database themselves.
type Snapshot struct {
	LowStockItems    []models.InventoryItem
	TodaysOrders     []models.Order
	TodaysAttendance []models.StaffAttendance
	ActiveStaff      int
}

// Rule pairs a keyword predicate with a response builder. New intents are
// added by appending rules, not by growing a conditional chain.
type Rule struct {
	Name     string
	Keywords []string
	Respond  func(s Snapshot, tr *i18n.Translator) string
}

func (r Rule) matches(input string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(input, kw) {
			return true
		}
	}
	return false
}

var rules = []Rule{
	{
		Name:     "stock",
		Keywords: []string{"stock", "inventory", "சரக்கு"},
		Respond:  stockReply,
	},
	{
		Name:     "sales",
		Keywords: []string{"sales", "revenue", "விற்பனை"},
		Respond:  salesReply,
	},
	{
		Name:     "staff",
		Keywords: []string{"staff", "attendance", "ஊழியர்"},
		Respond:  staffReply,
	},
}

// Reply evaluates the rules in order against the question and returns the
// first match's response, or the fallback help text.
func Reply(question string, s Snapshot, tr *i18n.Translator) string {
	input := strings.ToLower(question)
	for _, r := range rules {
		if r.matches(input) {
			return r.Respond(s, tr)
		}
	}
	return tr.T(
		"I can help you with inventory status, sales reports, staff management, and restaurant operations. Please ask me a specific question about these topics.",
		"நான் உங்களுக்கு சரக்கு நிலை, விற்பனை அறிக்கைகள், ஊழியர் மேலாண்மை மற்றும் உணவக செயல்பாடுகள் குறித்து உதவ முடியும். தயவுசெய்து குறிப்பிட்ட கேள்வி கேளுங்கள்.",
	)
}

func stockReply(s Snapshot, tr *i18n.Translator) string {
	outCount, lowCount := 0, 0
	names := []string{}
	for _, item := range s.LowStockItems {
		switch stock.Classify(item.CurrentStock, item.MinLevel) {
		case stock.OutOfStock:
			outCount++
		case stock.LowStock:
			lowCount++
		}
		if len(names) < 3 {
			names = append(names, item.Name)
		}
	}
	list := strings.Join(names, ", ")
	if tr.Language() == i18n.Tamil {
		return fmt.Sprintf("தற்போது %d பொருள்கள் முற்றிலும் தீர்ந்துவிட்டன மற்றும் %d பொருள்கள் குறைந்த அளவில் உள்ளன. உடனடியாக மீண்டும் ஸ்டாக் செய்ய வேண்டிய பொருள்கள்: %s", outCount, lowCount, list)
	}
	return fmt.Sprintf("Currently %d items are out of stock and %d items are running low. Items that need immediate restocking: %s", outCount, lowCount, list)
}

func salesReply(s Snapshot, tr *i18n.Translator) string {
	total := decimal.Zero
	for _, o := range s.TodaysOrders {
		total = total.Add(o.TotalAmount)
	}
	count := len(s.TodaysOrders)
	avg := decimal.Zero
	if count > 0 {
		avg = total.Div(decimal.NewFromInt(int64(count)))
	}
	if tr.Language() == i18n.Tamil {
		return fmt.Sprintf("இன்று மொத்தம் %d ஆர்டர்கள் மூலம் ₹%s விற்பனை ஆனது. சராசரி ஆர்டர் மதிப்பு ₹%s ஆகும்.", count, pos.FormatAmount(total), pos.FormatAmount(avg))
	}
	return fmt.Sprintf("Today's sales total ₹%s from %d orders. Average order value is ₹%s.", pos.FormatAmount(total), count, pos.FormatAmount(avg))
}

func staffReply(s Snapshot, tr *i18n.Translator) string {
	present := 0
	for _, a := range s.TodaysAttendance {
		if a.Status == models.AttendancePresent {
			present++
		}
	}
	absent := s.ActiveStaff - present
	if absent < 0 {
		absent = 0
	}
	if tr.Language() == i18n.Tamil {
		return fmt.Sprintf("இன்று %d ஊழியர்களில் %d பேர் வந்துள்ளனர். %d பேர் வரவில்லை.", s.ActiveStaff, present, absent)
	}
	return fmt.Sprintf("Today %d out of %d staff members are present. %d are absent.", present, s.ActiveStaff, absent)
}
