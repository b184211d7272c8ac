package apperror

// FallbackLanguage is used when the requested language has no entry in the
// catalog. Construction always resolves to a concrete language.
const FallbackLanguage = "en"

// catalog is pure data: code -> language -> user-facing message. It performs
// no I/O and holds no mutable state, so one instance is shared platform-wide.
var catalog = map[Code]map[string]string{
	CodeUnauthorized: {
		"en": "Authentication required",
		"ur": "تصدیق درکار ہے",
		"ar": "المصادقة مطلوبة",
	},
	CodeForbidden: {
		"en": "Access denied",
		"ur": "رسائی ممنوع ہے",
		"ar": "تم رفض الوصول",
	},
	CodeNotFound: {
		"en": "Resource not found",
		"ur": "وسیلہ نہیں ملا",
		"ar": "المورد غير موجود",
	},
	CodeValidationError: {
		"en": "Validation failed",
		"ur": "توثیق ناکام ہوگئی",
		"ar": "فشل التحقق من الصحة",
	},
	CodeConflict: {
		"en": "Resource already exists",
		"ur": "وسیلہ پہلے سے موجود ہے",
		"ar": "المورد موجود بالفعل",
	},
	CodeRateLimited: {
		"en": "Too many requests, please try again later",
		"ur": "بہت زیادہ درخواستیں، براہ کرم بعد میں دوبارہ کوشش کریں",
		"ar": "طلبات كثيرة جدًا، يرجى المحاولة مرة أخرى لاحقًا",
	},
	CodeInternalError: {
		"en": "Internal server error",
		"ur": "سرور میں داخلی خرابی",
		"ar": "خطأ داخلي في الخادم",
	},
	CodeTokenExpired: {
		"en": "Token has expired",
		"ur": "ٹوکن کی میعاد ختم ہوگئی ہے",
		"ar": "انتهت صلاحية الرمز",
	},
	CodeInvalidToken: {
		"en": "Invalid token",
		"ur": "غلط ٹوکن",
		"ar": "رمز غير صالح",
	},
	CodeBadRequest: {
		"en": "Bad request",
		"ur": "غلط درخواست",
		"ar": "طلب غير صالح",
	},
}

// Message resolves (code, language) to user-facing text, falling back to
// English for unknown languages and to the raw code for unknown codes.
func Message(code Code, lang string) string {
	messages, ok := catalog[code]
	if !ok {
		return string(code)
	}
	if msg, ok := messages[lang]; ok {
		return msg
	}
	return messages[FallbackLanguage]
}
