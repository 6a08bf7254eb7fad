package detector

// Fixed vocabularies shared across rule families. All of these are
// write-once package state, populated at init and read-only afterwards.

// validRoles is the set of concrete WAI-ARIA roles a role attribute may
// carry. Abstract roles are deliberately excluded; they are caught by a
// separate rule with a more specific message.
var validRoles = map[string]bool{
	"alert": true, "alertdialog": true, "application": true, "article": true,
	"banner": true, "button": true, "cell": true, "checkbox": true,
	"columnheader": true, "combobox": true, "complementary": true,
	"contentinfo": true, "definition": true, "dialog": true, "directory": true,
	"document": true, "feed": true, "figure": true, "form": true, "grid": true,
	"gridcell": true, "group": true, "heading": true, "img": true, "link": true,
	"list": true, "listbox": true, "listitem": true, "log": true, "main": true,
	"marquee": true, "math": true, "menu": true, "menubar": true,
	"menuitem": true, "menuitemcheckbox": true, "menuitemradio": true,
	"navigation": true, "none": true, "note": true, "option": true,
	"presentation": true, "progressbar": true, "radio": true,
	"radiogroup": true, "region": true, "row": true, "rowgroup": true,
	"rowheader": true, "scrollbar": true, "search": true, "searchbox": true,
	"separator": true, "slider": true, "spinbutton": true, "status": true,
	"switch": true, "tab": true, "table": true, "tablist": true,
	"tabpanel": true, "term": true, "textbox": true, "timer": true,
	"toolbar": true, "tooltip": true, "tree": true, "treegrid": true,
	"treeitem": true,
}

// abstractRoles must never appear in markup; they exist only to structure
// the ARIA ontology.
var abstractRoles = map[string]bool{
	"command": true, "composite": true, "input": true, "landmark": true,
	"range": true, "roletype": true, "section": true, "sectionhead": true,
	"select": true, "structure": true, "widget": true, "window": true,
}

// interactiveRoles are roles that make an element operable and therefore
// require keyboard reachability.
var interactiveRoles = map[string]bool{
	"button": true, "checkbox": true, "combobox": true, "link": true,
	"listbox": true, "menuitem": true, "menuitemcheckbox": true,
	"menuitemradio": true, "option": true, "radio": true, "scrollbar": true,
	"searchbox": true, "slider": true, "spinbutton": true, "switch": true,
	"tab": true, "textbox": true, "treeitem": true,
}

// implicitRoleTags maps a role to the tags that already carry it
// implicitly, making the explicit role redundant.
var implicitRoleTags = map[string][]string{
	"button":      {"button"},
	"link":        {"a"},
	"checkbox":    {"input"},
	"radio":       {"input"},
	"textbox":     {"textarea"},
	"heading":     {"h1", "h2", "h3", "h4", "h5", "h6"},
	"list":        {"ul", "ol"},
	"listitem":    {"li"},
	"navigation":  {"nav"},
	"main":        {"main"},
	"banner":      {"header"},
	"contentinfo": {"footer"},
	"form":        {"form"},
	"table":       {"table"},
	"img":         {"img"},
}

// genericLabelWords are aria-label values that restate what the element is
// instead of what it does.
var genericLabelWords = map[string]bool{
	"button": true, "link": true, "click": true, "click here": true,
	"image": true, "icon": true, "input": true, "text": true, "submit": true,
	"go": true, "here": true, "more": true, "menu": true, "element": true,
}

// genericLinkPhrases are link texts that carry no destination information
// when read out of context.
var genericLinkPhrases = map[string]bool{
	"click here": true, "click": true, "here": true, "read more": true,
	"more": true, "link": true, "learn more": true, "this": true,
	"go": true, "details": true,
}

// autocompleteTokens is the standard token list for the autocomplete
// attribute. "off" and "on" are handled separately by the rules.
var autocompleteTokens = map[string]bool{
	"name": true, "honorific-prefix": true, "given-name": true,
	"additional-name": true, "family-name": true, "honorific-suffix": true,
	"nickname": true, "email": true, "username": true, "new-password": true,
	"current-password": true, "one-time-code": true, "organization-title": true,
	"organization": true, "street-address": true, "address-line1": true,
	"address-line2": true, "address-line3": true, "address-level4": true,
	"address-level3": true, "address-level2": true, "address-level1": true,
	"country": true, "country-name": true, "postal-code": true,
	"cc-name": true, "cc-given-name": true, "cc-additional-name": true,
	"cc-family-name": true, "cc-number": true, "cc-exp": true,
	"cc-exp-month": true, "cc-exp-year": true, "cc-csc": true, "cc-type": true,
	"transaction-currency": true, "transaction-amount": true, "language": true,
	"bday": true, "bday-day": true, "bday-month": true, "bday-year": true,
	"sex": true, "tel": true, "tel-country-code": true, "tel-national": true,
	"tel-area-code": true, "tel-local": true, "tel-extension": true,
	"impp": true, "url": true, "photo": true, "webauthn": true,
}

// ariaAttributes is the set of known aria-* attributes; anything else
// spelled aria-… is a typo or an invention.
var ariaAttributes = map[string]bool{
	"aria-activedescendant": true, "aria-atomic": true,
	"aria-autocomplete": true, "aria-braillelabel": true,
	"aria-brailleroledescription": true, "aria-busy": true,
	"aria-checked": true, "aria-colcount": true, "aria-colindex": true,
	"aria-colspan": true, "aria-controls": true, "aria-current": true,
	"aria-describedby": true, "aria-description": true, "aria-details": true,
	"aria-disabled": true, "aria-errormessage": true, "aria-expanded": true,
	"aria-flowto": true, "aria-haspopup": true, "aria-hidden": true,
	"aria-invalid": true, "aria-keyshortcuts": true, "aria-label": true,
	"aria-labelledby": true, "aria-level": true, "aria-live": true,
	"aria-modal": true, "aria-multiline": true, "aria-multiselectable": true,
	"aria-orientation": true, "aria-owns": true, "aria-placeholder": true,
	"aria-posinset": true, "aria-pressed": true, "aria-readonly": true,
	"aria-relevant": true, "aria-required": true, "aria-roledescription": true,
	"aria-rowcount": true, "aria-rowindex": true, "aria-rowspan": true,
	"aria-selected": true, "aria-setsize": true, "aria-sort": true,
	"aria-valuemax": true, "aria-valuemin": true, "aria-valuenow": true,
	"aria-valuetext": true,
}

// ariaBooleanAttributes take only "true" or "false".
var ariaBooleanAttributes = []string{
	"aria-hidden", "aria-modal", "aria-multiline", "aria-multiselectable",
	"aria-atomic", "aria-busy", "aria-readonly", "aria-required",
	"aria-disabled",
}

// cssColorNames are the bare color-name tokens used by the color family to
// judge whether color alone is conveying meaning.
var cssColorNames = map[string]bool{
	"red": true, "green": true, "blue": true, "yellow": true, "orange": true,
	"purple": true, "pink": true, "brown": true, "black": true, "white": true,
	"gray": true, "grey": true, "cyan": true, "magenta": true, "lime": true,
	"maroon": true, "navy": true, "olive": true, "teal": true, "silver": true,
	"gold": true, "crimson": true, "coral": true, "salmon": true,
	"khaki": true, "violet": true, "indigo": true, "turquoise": true,
	"beige": true, "tan": true, "aqua": true, "fuchsia": true,
}

// Field-name heuristics for the input-purpose family. A field whose
// name/id matches one of these categories should declare an autocomplete
// purpose.
var (
	authFieldHints      = []string{"password", "passwd", "username", "user_name", "login", "otp", "one-time"}
	financialFieldHints = []string{"card", "cc-", "ccnum", "cvv", "cvc", "iban", "account-number", "routing"}
	personalFieldHints  = []string{"firstname", "first_name", "first-name", "lastname", "last_name", "last-name", "fullname", "full_name", "full-name", "birthday", "birthdate", "dob"}
	contactFieldHints   = []string{"email", "e-mail", "phone", "telephone", "mobile", "fax"}
	addressFieldHints   = []string{"address", "street", "city", "zip", "zipcode", "postal", "postcode", "country", "state", "province"}
)
