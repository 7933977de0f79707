package rendering

import (
	"strings"
	"unicode"
)

const (
	// rawDerivSuffix tags methods that were scored on derivative spectra.
	rawDerivSuffix = "_deriv"
	// derivMarker is the human-readable form of rawDerivSuffix in tables.
	derivMarker = " (Deriv)"
)

// labelRenames maps raw model identifiers to readable table labels. Rules are
// applied in order with plain substring replacement, so later rules see the
// output of earlier ones.
var labelRenames = []struct {
	old string
	new string
}{
	{"Enhanced Neural Network", "Enhanced NN"},
	{"Enhanced PLS", "Enhanced PLS"},
	{"Random Forest", "Random Forest"},
	{"MLPRegressor", "MLP Regressor"},
	{"XGBRegressor", "XGBoost"},
	{"LGBMRegressor", "LightGBM"},
	{"ExtraTreesRegressor", "Extra Trees"},
	{"HistGradientBoostingRegressor", "Hist Gradient Boosting"},
	{"GradientBoostingRegressor", "Gradient Boosting"},
	{"KNeighborsRegressor", "K-Neighbors"},
	{"BaggingRegressor", "Bagging"},
	{"AdaBoostRegressor", "AdaBoost"},
	{"LinearRegression", "Linear Regression"},
	{"BayesianRidge", "Bayesian Ridge"},
	{"RidgeCV", "Ridge CV"},
	{"LassoCV", "Lasso CV"},
	{"ElasticNetCV", "ElasticNet CV"},
	{"TransformedTargetRegressor", "Transformed Target"},
	{"OrthogonalMatchingPursuitCV", "OMP CV"},
	{"PCA", "PCA"},
	{"noScale", "No Scaling"},
	{"StndScale", "Standard Scaling"},
}

// CleanMethodLabel converts a raw method identifier into the label shown in
// LaTeX tables. It strips a trailing "_deriv" tag, replaces underscores with
// spaces, applies the rename rules, normalizes word casing (fully uppercase
// words are kept as-is, everything else is capitalized) and appends a
// " (Deriv)" marker when the tag was present. Already-clean labels pass
// through unchanged.
func CleanMethodLabel(name string) string {
	cleaned := name

	derivative := false
	if strings.HasSuffix(cleaned, rawDerivSuffix) {
		derivative = true
		cleaned = strings.TrimSuffix(cleaned, rawDerivSuffix)
	} else if strings.HasSuffix(cleaned, derivMarker) {
		derivative = true
		cleaned = strings.TrimSuffix(cleaned, derivMarker)
	}

	cleaned = strings.ReplaceAll(cleaned, "_", " ")

	for _, rule := range labelRenames {
		cleaned = strings.ReplaceAll(cleaned, rule.old, rule.new)
	}

	words := strings.Fields(cleaned)
	for i, word := range words {
		if !allCapsWord(word) {
			words[i] = capitalizeWord(word)
		}
	}
	cleaned = strings.Join(words, " ")

	if derivative {
		cleaned += derivMarker
	}
	return cleaned
}

// TitleProperty converts a raw property key into its display form: underscores
// become spaces and each word is title-cased ("Clay_Content" reads
// "Clay Content", "pH" reads "Ph").
func TitleProperty(name string) string {
	spaced := strings.ReplaceAll(name, "_", " ")

	var b strings.Builder
	b.Grow(len(spaced))
	prevLetter := false
	for _, r := range spaced {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// TableLabel builds the \label target for a property's detailed table:
// lowercase, underscores removed, "tab:" prefix.
func TableLabel(name string) string {
	return "tab:" + labelSlug(name)
}

// labelSlug lowercases name and strips underscores.
func labelSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "")
}

// allCapsWord reports whether word contains at least one letter and no
// lowercase letters, e.g. "PCA", "NN", "CV".
func allCapsWord(word string) bool {
	hasUpper := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// capitalizeWord uppercases the first rune and lowercases the rest.
func capitalizeWord(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
