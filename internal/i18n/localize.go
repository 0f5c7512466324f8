package i18n

// Localize looks up Namespace+str
func Localize(l Localizer, str string) string {
	return l.Localize(Namespace + str)
}

// TryLocalize looks up Namespace+str, returning def when there is no translation
func TryLocalize(l Localizer, str, def string) string {
	key := Namespace + str
	if !l.Has(key) {
		return def
	}
	return l.Localize(key)
}

// LocalizeParam looks up Namespace+str and fills its {name} placeholders
func LocalizeParam(l Localizer, str string, params map[string]any) string {
	return l.Format(Namespace+str, params)
}

// ShortLocalize prefers the "<str>Short" translation when one exists,
// falling back to str's translation and then to str itself.
func ShortLocalize(l Localizer, str string) string {
	if l.Has(Namespace + str + "Short") {
		return TryLocalize(l, str+"Short", str+"Short")
	}
	return TryLocalize(l, str, str)
}
