package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/lifei6671/guizhanlib/localization"
)

// LangFile 是语言目录中的一个文件，文件名即语言名。
type LangFile struct {
	Language string
	Section  *localization.Section
}

type Result struct {
	Base          string
	Languages     []string
	MissingKeys   map[string][]string
	RedundantKeys map[string][]string
	SyntaxErrors  map[string]map[string]error // lang -> key -> err
	BadTags       map[string]error            // lang -> tag parse error
	AllKeys       []string
}

// HasIssues 判断检查结果中是否有任何问题。
func (r *Result) HasIssues() bool {
	for _, m := range []map[string][]string{r.MissingKeys, r.RedundantKeys} {
		for _, arr := range m {
			if len(arr) > 0 {
				return true
			}
		}
	}
	for _, errs := range r.SyntaxErrors {
		if len(errs) > 0 {
			return true
		}
	}
	return len(r.BadTags) > 0
}

// CheckLocales 检查语言目录：
//  1. 以 base 为准检查缺失与多余的键，base 为空时以所有语言的并集为准
//  2. 用 localization.ValidateTemplate 检查每条文本的占位符语法
//  3. 文件名必须是合法的语言标签（zh-CN、en_US 等）
func CheckLocales(dir, base string) (*Result, error) {
	files, err := scanYAML(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no language files found in %s", dir)
	}

	res := &Result{
		Base:          base,
		MissingKeys:   make(map[string][]string),
		RedundantKeys: make(map[string][]string),
		SyntaxErrors:  make(map[string]map[string]error),
		BadTags:       make(map[string]error),
	}

	langKeys := make(map[string]map[string]struct{}, len(files))
	union := make(map[string]struct{})
	for _, file := range files {
		kset := make(map[string]struct{})
		for _, k := range file.Section.Keys() {
			kset[k] = struct{}{}
			union[k] = struct{}{}
		}
		langKeys[file.Language] = kset
		res.Languages = append(res.Languages, file.Language)

		if _, err := language.Parse(strings.ReplaceAll(file.Language, "_", "-")); err != nil {
			res.BadTags[file.Language] = err
		}
	}
	sort.Strings(res.Languages)

	reference := union
	if base != "" {
		ref, ok := langKeys[base]
		if !ok {
			return nil, fmt.Errorf("base language %s not found in %s", base, dir)
		}
		reference = ref
	}
	res.AllKeys = sortedKeys(reference)

	for lang, kset := range langKeys {
		for _, k := range res.AllKeys {
			if _, ok := kset[k]; !ok {
				res.MissingKeys[lang] = append(res.MissingKeys[lang], k)
			}
		}
		for _, k := range sortedKeys(kset) {
			if _, ok := reference[k]; !ok {
				res.RedundantKeys[lang] = append(res.RedundantKeys[lang], k)
			}
		}
	}

	for _, file := range files {
		for _, key := range file.Section.Keys() {
			texts := file.Section.StringList(key)
			if text, ok := file.Section.String(key); ok {
				texts = append(texts, text)
			}
			for _, text := range texts {
				if err := localization.ValidateTemplate(text); err != nil {
					if res.SyntaxErrors[file.Language] == nil {
						res.SyntaxErrors[file.Language] = make(map[string]error)
					}
					res.SyntaxErrors[file.Language][key] = err
					break
				}
			}
		}
	}
	return res, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func scanYAML(dir string) ([]LangFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var res []LangFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		sec, err := localization.ParseSection(data)
		if err != nil {
			return nil, fmt.Errorf("yaml error %s: %w", path, err)
		}
		res = append(res, LangFile{
			Language: strings.TrimSuffix(e.Name(), ext),
			Section:  sec,
		})
	}
	return res, nil
}
