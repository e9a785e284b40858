package highlight

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"
)

// maxDetectBytes bounds how much content is handed to language detection.
const maxDetectBytes = 16 << 10

// DetectLanguage guesses the language of a file from its name and content.
// It returns "" when nothing matches.
func DetectLanguage(path string, content []byte) string {
	if len(content) > maxDetectBytes {
		content = content[:maxDetectBytes]
	}
	name := filepath.Base(path)
	if path == "" {
		name = ""
	}
	if lang := enry.GetLanguage(name, content); lang != "" {
		return lang
	}
	if name != "" {
		if lang, ok := enry.GetLanguageByExtension(name); ok {
			return lang
		}
	}
	return ""
}

// lexerFor resolves a chroma lexer for path, trying the detected language
// first, then chroma's own filename patterns, then content analysis.
func lexerFor(path string, content string) chroma.Lexer {
	if lang := DetectLanguage(path, []byte(content)); lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if path != "" {
		if l := lexers.Match(filepath.Base(path)); l != nil {
			return l
		}
	}
	if content != "" {
		if l := lexers.Analyse(content); l != nil {
			return l
		}
	}
	return lexers.Fallback
}
