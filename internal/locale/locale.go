// Package locale renders every user-visible assistant sentence in the caller's
// selected language. Hindi and English are supported; any other language code
// falls back to English.
package locale

import "fmt"

// Language is a supported response language.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// Parse normalizes a language code. Unsupported codes fall back to English.
func Parse(code string) Language {
	if Language(code) == Hindi {
		return Hindi
	}
	return English
}

// Key identifies a message template in the catalog.
type Key string

const (
	MsgMpinPrompt         Key = "mpin_prompt"
	MsgMpinFailed         Key = "mpin_failed"
	MsgBalance            Key = "balance"
	MsgTransactionHistory Key = "transaction_history"
	MsgTransferClarify    Key = "transfer_clarify"
	MsgTransferPrompt     Key = "transfer_prompt"
	MsgTransferDone       Key = "transfer_done"
	MsgBillPreparing      Key = "bill_preparing"
	MsgBillPaid           Key = "bill_paid"
	MsgBillGeneric        Key = "bill_generic"
	MsgLoansNone          Key = "loans_none"
	MsgLoansSummary       Key = "loans_summary"
	MsgLoanOutstanding    Key = "loan_outstanding"
	MsgFdPrompt           Key = "fd_prompt"
	MsgFdSubmitted        Key = "fd_submitted"
	MsgComplaint          Key = "complaint"
	MsgCreditLimit        Key = "credit_limit"
	MsgReminderSet        Key = "reminder_set"
	MsgReminderError      Key = "reminder_error"
	MsgPaymentGeneric     Key = "payment_generic"
	MsgSoonGeneric        Key = "soon_generic"
	MsgRecipientGeneric   Key = "recipient_generic"
	MsgNavHistory         Key = "nav_history"
	MsgNavProfile         Key = "nav_profile"
	MsgNavFaq             Key = "nav_faq"
	MsgNavDashboard       Key = "nav_dashboard"
	MsgUnknown            Key = "unknown"
	MsgActionDone         Key = "action_done"
	MsgFaqUnavailable     Key = "faq_unavailable"
)

type message struct {
	en string
	hi string
}

var catalog = map[Key]message{
	MsgMpinPrompt: {
		en: "Please verify your MPIN.",
		hi: "कृपया अपने mPIN की पुष्टि करें।",
	},
	MsgMpinFailed: {
		en: "MPIN verification failed. Please try again.",
		hi: "mPIN सत्यापन विफल रहा। कृपया पुनः प्रयास करें।",
	},
	MsgBalance: {
		en: "Your account balance is ₹%s.",
		hi: "आपका खाता शेष ₹%s है।",
	},
	MsgTransactionHistory: {
		en: "Opening your transaction history.",
		hi: "आपका लेन-देन इतिहास खोल रहा हूँ।",
	},
	MsgTransferClarify: {
		en: "Please provide recipient name and amount.",
		hi: "कृपया प्राप्तकर्ता का नाम और राशि बताएं।",
	},
	MsgTransferPrompt: {
		en: "Enter your mPIN to send ₹%[1]s to %[2]s.",
		hi: "%[2]s को ₹%[1]s भेजने के लिए अपना mPIN दर्ज करें।",
	},
	MsgTransferDone: {
		en: "₹%[1]s successfully sent to %[2]s.",
		hi: "₹%[1]s सफलतापूर्वक %[2]s को भेज दिया गया।",
	},
	MsgBillPreparing: {
		en: "Preparing bill payment for %s.",
		hi: "बिल भुगतान के लिए तैयार कर रहा हूँ: %s।",
	},
	MsgBillPaid: {
		en: "Your payment for %s is successful.",
		hi: "%s के लिए आपका भुगतान सफल रहा।",
	},
	MsgBillGeneric: {
		en: "bill",
		hi: "बिल",
	},
	MsgLoansNone: {
		en: "You have no active loans.",
		hi: "आपके पास कोई सक्रिय ऋण नहीं है।",
	},
	MsgLoansSummary: {
		en: "Your loans: %s",
		hi: "आपके ऋण: %s",
	},
	MsgLoanOutstanding: {
		en: "Your outstanding loan amount is ₹%s.",
		hi: "आपकी बकाया ऋण राशि ₹%s है।",
	},
	MsgFdPrompt: {
		en: "Enter your mPIN for FD withdrawal.",
		hi: "FD निकासी के लिए अपना mPIN दर्ज करें।",
	},
	MsgFdSubmitted: {
		en: "Your FD withdrawal request has been submitted.",
		hi: "आपका FD निकासी अनुरोध जमा कर दिया गया है।",
	},
	MsgComplaint: {
		en: "Please describe your complaint, I will register it.",
		hi: "कृपया अपनी शिकायत बताएं, मैं इसे दर्ज कर लूंगा।",
	},
	MsgCreditLimit: {
		en: "Your credit limit is ₹%s.",
		hi: "आपकी क्रेडिट सीमा ₹%s है।",
	},
	MsgReminderSet: {
		en: "Okay, I will remind you to pay %[1]s %[2]s.",
		hi: "ठीक है, मैं आपको %[1]s का भुगतान %[2]s करने की याद दिला दूंगा।",
	},
	MsgReminderError: {
		en: "Error setting reminder.",
		hi: "रिमाइंडर सेट करने में त्रुटि हुई।",
	},
	MsgPaymentGeneric: {
		en: "payment",
		hi: "भुगतान",
	},
	MsgSoonGeneric: {
		en: "soon",
		hi: "जल्द ही",
	},
	MsgRecipientGeneric: {
		en: "recipient",
		hi: "प्राप्तकर्ता",
	},
	MsgNavHistory: {
		en: "Opening history",
		hi: "इतिहास खोल रहा हूँ",
	},
	MsgNavProfile: {
		en: "Opening profile",
		hi: "प्रोफ़ाइल खोल रहा हूँ",
	},
	MsgNavFaq: {
		en: "Opening FAQ",
		hi: "FAQ खोल रहा हूँ",
	},
	MsgNavDashboard: {
		en: "Opening dashboard",
		hi: "डैशबोर्ड खोल रहा हूँ",
	},
	MsgUnknown: {
		en: "I didn't understand that. Please say again.",
		hi: "मैं समझ नहीं पाया। कृपया फिर से कहें।",
	},
	MsgActionDone: {
		en: "Action completed successfully.",
		hi: "कार्य सफलतापूर्वक पूरा हुआ।",
	},
	MsgFaqUnavailable: {
		en: "Sorry, I couldn't find an answer right now. Please try again later.",
		hi: "क्षमा करें, मुझे अभी उत्तर नहीं मिल सका। कृपया बाद में पुनः प्रयास करें।",
	},
}

// T renders the template identified by key in the requested language,
// interpolating args when the template expects them. A missing key renders
// empty, which the catalog coverage test guards against.
func T(lang Language, key Key, args ...any) string {
	msg, ok := catalog[key]
	if !ok {
		return ""
	}

	tmpl := msg.en
	if lang == Hindi {
		tmpl = msg.hi
	}

	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Keys returns every catalog key. Used by coverage tests.
func Keys() []Key {
	keys := make([]Key, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	return keys
}
