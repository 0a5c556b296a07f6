package pattern

import (
	"regexp/syntax"
)

// sanitize validates expression fragment and rewrites its capturing groups as non-capturing
func sanitize(expr string) (string, error) {
	re, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return "", err
	}
	if re.MaxCap() == 0 {
		return expr, nil
	}
	return uncapture(re).String(), nil
}

func uncapture(re *syntax.Regexp) *syntax.Regexp {
	for re.Op == syntax.OpCapture {
		re = re.Sub[0]
	}
	for i, sub := range re.Sub {
		re.Sub[i] = uncapture(sub)
	}
	return re
}
