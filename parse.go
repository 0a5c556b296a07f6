package parsefmt

import "github.com/viant/parsefmt/conv"

// Parse compiles template case-insensitively and matches the whole text
func Parse(template, text string) (*Result, error) {
	return ParseWithTypes(template, text, nil)
}

// Search compiles template case-insensitively and matches the first occurrence in text
func Search(template, text string) (*Result, error) {
	return SearchWithTypes(template, text, nil)
}

// FindAll compiles template case-insensitively and returns all matches in text
func FindAll(template, text string) ([]*Result, error) {
	return FindAllWithTypes(template, text, nil)
}

func ParseWithTypes(template, text string, extra map[string]conv.Converter) (*Result, error) {
	matcher, err := CompileWithTypes(template, false, extra)
	if err != nil {
		return nil, err
	}
	return matcher.Parse(text)
}

func SearchWithTypes(template, text string, extra map[string]conv.Converter) (*Result, error) {
	matcher, err := CompileWithTypes(template, false, extra)
	if err != nil {
		return nil, err
	}
	return matcher.Search(text)
}

func FindAllWithTypes(template, text string, extra map[string]conv.Converter) ([]*Result, error) {
	matcher, err := CompileWithTypes(template, false, extra)
	if err != nil {
		return nil, err
	}
	return matcher.FindAll(text), nil
}
