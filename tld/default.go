package tld

import "sync"

// builtin is a pragmatic subset of the public suffix list: the generic TLDs
// plus the country codes and multi-label suffixes most commonly seen in
// web-style URLs. Callers needing the full list should load it with
// [ParseList] or [FromFile].
var builtin = []string{
	// generic
	"com", "net", "org", "edu", "gov", "mil", "int", "info", "biz", "name",
	"pro", "aero", "coop", "museum", "mobi", "travel", "xxx", "asia", "tel",
	// newer generic
	"dev", "app", "io", "ai", "co", "me", "tv", "cc", "ws", "xyz", "online",
	"site", "store", "tech", "blog", "cloud", "news", "live", "run", "page",
	"systems", "solutions", "digital", "agency", "email", "expert", "studio",
	// country codes
	"ac", "ad", "ae", "ar", "at", "au", "be", "bg", "br", "by", "ca", "ch",
	"cl", "cn", "cz", "de", "dk", "ee", "eg", "es", "eu", "fi", "fr", "gr",
	"hk", "hr", "hu", "id", "ie", "il", "in", "ir", "is", "it", "jp", "kr",
	"li", "lt", "lu", "lv", "mx", "my", "nl", "no", "nz", "ph", "pl", "pt",
	"ro", "rs", "ru", "sa", "se", "sg", "si", "sk", "th", "tr", "tw", "ua",
	"uk", "us", "vn", "za",
	// multi-label suffixes
	"co.uk", "org.uk", "me.uk", "net.uk", "ac.uk", "gov.uk", "ltd.uk", "plc.uk",
	"com.au", "net.au", "org.au", "edu.au", "gov.au", "id.au",
	"co.jp", "or.jp", "ne.jp", "ac.jp", "go.jp", "ad.jp",
	"co.nz", "net.nz", "org.nz", "govt.nz", "ac.nz",
	"com.br", "net.br", "org.br", "gov.br",
	"com.cn", "net.cn", "org.cn", "gov.cn",
	"com.mx", "com.ar", "com.tr", "com.sg", "com.hk", "com.tw", "com.my",
	"co.za", "co.kr", "co.in", "co.il", "co.id", "co.th",
	"org.il", "net.il", "ac.il",
	"gov.in", "net.in", "org.in",
}

var (
	defOnce sync.Once
	defSet  *Set
)

// Default returns the builtin suffix set. The set is built once and shared;
// mutating it affects every caller in the process.
func Default() *Set {
	defOnce.Do(func() {
		defSet = New(builtin...)
	})
	return defSet
}
