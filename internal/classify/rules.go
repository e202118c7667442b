// Package classify assigns spending categories to transactions by matching
// cleaned narration text against an ordered rule table. Rules are scanned
// top to bottom and the first match wins, so more specific patterns sit
// above the generic ones they would otherwise be shadowed by.
package classify

import "regexp"

// Rule pairs a narration pattern with the category it assigns.
type Rule struct {
	Pattern  *regexp.Regexp
	Category string
}

// Category names produced by the built-in rule table.
const (
	CategorySalary             = "Salary"
	CategoryParking            = "Parking"
	CategoryTransport          = "Transport"
	CategoryEatOut             = "Eat out"
	CategoryChildEducation     = "Child Education"
	CategoryEssentials         = "Essentials"
	CategoryInvestments        = "Investments"
	CategorySocietyMaintenance = "Society Maintenance"
	CategoryInsurance          = "Insurance"
	CategoryGrocery            = "Grocery"
	CategoryClothing           = "Clothing"
	CategoryCashWithdrawal     = "Cash Withdrawal"
	CategoryFundTransfer       = "Fund Transfer"
	CategoryMedicals           = "Medicals"
	CategorySelfCare           = "Self Care"
	CategoryInternet           = "Internet/Subscriptions"
	CategoryHouseMaintenance   = "House Maintenance"
	CategoryCreditCard         = "Credit Card"
	CategoryLearning           = "Learning & Development"
	CategoryEntertainment      = "Entertainment"
	CategoryGifts              = "Gifts"
	CategoryReimbursement      = "Reimbursement"
)

// builtinRules is the default rule table. Order is load-bearing: "book"
// must precede "bookmyshow" so book purchases classify as learning, and
// the employer patterns must precede the generic transport and parking
// patterns they overlap with.
var builtinRules = []Rule{
	{regexp.MustCompile(`stonewain.*pay|pay.*stonewain`), CategorySalary},
	{regexp.MustCompile(`stonewain.*park|park.*stonewain|parking`), CategoryParking},
	{regexp.MustCompile(`fuel|car|harpreet bhar|irctc|cm auto|cab|cycle|train|alto|fronx|toll|transport`), CategoryTransport},
	{regexp.MustCompile(`dinner|lunch|icecream|pizza|cake|haldiram|zomato|swiggy|tea|fries|kheer|dosa|royal sweet|snack|jamun|kulcha|chaat|gappe|gappa|momo|food|juice|shake|donut|soup|restaurant`), CategoryEatOut},
	{regexp.MustCompile(`manavmangalsmartscho`), CategoryChildEducation},
	{regexp.MustCompile(`fiffin`), CategoryEssentials},
	{regexp.MustCompile(`paytmiccl|indianesign|indian clearing corp|ppf|fd through mobile|investment`), CategoryInvestments},
	{regexp.MustCompile(`sewerage|jtpl|resident welfare`), CategorySocietyMaintenance},
	{regexp.MustCompile(`insurance`), CategoryInsurance},
	{regexp.MustCompile(`grocery|smart bazaar|blinkit|vegetable|sweet|fruit|mandeep kumar|sunscreen|rakhi|indane|veg|onion|egg|fish|chicken|curd|boondi|paneer|mirch|pepper|bread|apple|banana|orange|anaar|grape|oil|flour|aata|atta|milk|jaggery|all out|chawal|dal`), CategoryGrocery},
	{regexp.MustCompile(`shoe|cloth|towel|jean|shirt|flipflop|myntra|crocs`), CategoryClothing},
	{regexp.MustCompile(`atm|atw`), CategoryCashWithdrawal},
	{regexp.MustCompile(`transfer`), CategoryFundTransfer},
	{regexp.MustCompile(`medicine|lab tests|tabs`), CategoryMedicals},
	{regexp.MustCompile(`hair cut|salon|beard|gym`), CategorySelfCare},
	{regexp.MustCompile(`airtel|jio|internet|air fiber`), CategoryInternet},
	{regexp.MustCompile(`door|pot|mirror|table|repair|urbancompany|ac service|inverter|bath|lamp|pspcl|water tank|wire|pure it|paint|racks|wash basin|gutter|capacitor|grass|appliance`), CategoryHouseMaintenance},
	{regexp.MustCompile(`ib billpay dr-hdfc92|si-tad`), CategoryCreditCard},
	{regexp.MustCompile(`book`), CategoryLearning},
	{regexp.MustCompile(`bookmyshow|gadget|toy|ride|cracker|travel`), CategoryEntertainment},
	{regexp.MustCompile(`birthday|gift`), CategoryGifts},
	{regexp.MustCompile(`reimbursement`), CategoryReimbursement},
}

// BuiltinRules returns a copy of the default rule table.
func BuiltinRules() []Rule {
	rules := make([]Rule, len(builtinRules))
	copy(rules, builtinRules)
	return rules
}
