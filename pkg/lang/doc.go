// Package lang detects the response language of a request.
//
// The service answers in English or Spanish. Detect looks at the raw
// Accept-Language header and picks EN when the lower-cased value contains "en"
// anywhere, ES otherwise. There is no quality-value negotiation; the substring
// rule is intentionally kept as is so existing clients see the same behaviour.
//
// Language.Tag bridges to golang.org/x/text/language for emitting
// Content-Language headers or building message printers.
package lang
