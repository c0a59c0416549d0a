package conf

import (
	"strings"
)

type featuresSettingS struct {
	kv       map[string]string
	suites   map[string][]string
	features map[string]string
}

func newFeatures(suites map[string][]string, kv map[string]string) *featuresSettingS {
	if suites == nil {
		suites = make(map[string][]string)
	}
	if kv == nil {
		kv = make(map[string]string)
	}
	features := &featuresSettingS{
		suites:   suites,
		kv:       kv,
		features: make(map[string]string),
	}
	features.UseDefault()
	return features
}

func (f *featuresSettingS) UseDefault() {
	f.Use([]string{"default"}, true)
}

// Use enables every feature of suite, expanding suite names recursively.
// With noDefault the previously enabled features are dropped first.
func (f *featuresSettingS) Use(suite []string, noDefault bool) error {
	if noDefault {
		f.features = make(map[string]string)
	}
	for _, feature := range f.flatFeatures(suite) {
		f.features[feature] = f.kv[feature]
	}
	return nil
}

func (f *featuresSettingS) flatFeatures(suite []string) []string {
	features := make([]string, 0, len(suite)+10)
	seen := make(map[string]struct{})
	stack := append([]string(nil), suite...)
	for len(stack) > 0 {
		item := strings.ToLower(strings.TrimSpace(stack[len(stack)-1]))
		stack = stack[:len(stack)-1]
		if item == "" {
			continue
		}
		if _, exist := seen[item]; exist {
			continue
		}
		seen[item] = struct{}{}
		features = append(features, item)
		if items, exist := f.suites[item]; exist {
			stack = append(stack, items...)
		}
	}
	return features
}

// Cfg get value by key if exist
func (f *featuresSettingS) Cfg(key string) (string, bool) {
	value, exist := f.features[strings.ToLower(strings.TrimSpace(key))]
	return value, exist
}

// CfgIf check expression is true. if expression just have a string like
// `Sms` is mean `Sms` whether defined in suite feature settings. expression like
// `Sms = SmsJuhe` is mean whether `Sms` define in suite feature settings and value
// is `SmsJuhe``
func (f *featuresSettingS) CfgIf(expression string) bool {
	kv := strings.Split(expression, "=")
	if len(kv) != 1 && len(kv) != 2 {
		return false
	}
	v, ok := f.Cfg(kv[0])
	if len(kv) == 2 {
		return ok && strings.TrimSpace(kv[1]) == v
	}
	return ok
}
