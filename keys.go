/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package relstore

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/suparena/relstore/models"
)

const (
	recordKeyTemplate   = "{type}/{id}"
	sequenceKeyTemplate = "{type}/_seq"
	indexKeyTemplate    = "{type}/_index"
)

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros replaces each {name} in template with values[name]. Unknown
// macros expand to the empty string.
func expandMacros(template string, values map[string]string) string {
	return macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
		return values[strings.Trim(macro, "{}")]
	})
}

func recordKey(typeName string, id models.ID) string {
	return expandMacros(recordKeyTemplate, map[string]string{
		"type": typeName,
		"id":   strconv.FormatInt(int64(id), 10),
	})
}

func sequenceKey(typeName string) string {
	return expandMacros(sequenceKeyTemplate, map[string]string{"type": typeName})
}

func indexKey(typeName string) string {
	return expandMacros(indexKeyTemplate, map[string]string{"type": typeName})
}
