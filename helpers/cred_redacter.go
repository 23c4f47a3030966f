package helpers

import (
	"encoding/json"
	"regexp"

	"code.cloudfoundry.org/lager"
)

const apiURLCredPattern = `^(http|https):\/\/(.+):(.+)@([\da-zA-Z\.-]+)(:[\d]{2,5})?(\/.*)?$`

// CredRedacter scrubs structured log payloads: matching keys are redacted by
// lager's JSONRedacter, and string values that are URLs with embedded
// userinfo get their password replaced.
type CredRedacter struct {
	jsonRedacter   *lager.JSONRedacter
	urlCredMatcher *regexp.Regexp
}

func NewCredRedacter(keyPatterns []string, valuePatterns []string) (*CredRedacter, error) {
	jsonRedacter, err := lager.NewJSONRedacter(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	urlCredMatcher, err := regexp.Compile(apiURLCredPattern)
	if err != nil {
		return nil, err
	}
	return &CredRedacter{
		jsonRedacter:   jsonRedacter,
		urlCredMatcher: urlCredMatcher,
	}, nil
}

func (r CredRedacter) Redact(data []byte) []byte {
	var jsonBlob interface{}
	err := json.Unmarshal(data, &jsonBlob)
	if err != nil {
		return handleError(err)
	}
	r.redactValue(&jsonBlob)

	data, err = json.Marshal(jsonBlob)
	if err != nil {
		return handleError(err)
	}

	return r.jsonRedacter.Redact(data)
}

func (r CredRedacter) redactValue(data *interface{}) interface{} {
	if data == nil {
		return data
	}

	if a, ok := (*data).([]interface{}); ok {
		r.redactArray(&a)
	} else if m, ok := (*data).(map[string]interface{}); ok {
		r.redactObject(&m)
	} else if s, ok := (*data).(string); ok {
		if r.urlCredMatcher.MatchString(s) {
			(*data) = r.urlCredMatcher.ReplaceAllString(s, `$1://$2:*REDACTED*@$4$5$6`)
		}
	}
	return (*data)
}

func (r CredRedacter) redactArray(data *[]interface{}) {
	for i := range *data {
		r.redactValue(&((*data)[i]))
	}
}

func (r CredRedacter) redactObject(data *map[string]interface{}) {
	for k, v := range *data {
		(*data)[k] = r.redactValue(&v)
	}
}

func handleError(err error) []byte {
	var content []byte
	if _, ok := err.(*json.UnsupportedTypeError); ok {
		data := map[string]interface{}{"lager serialisation error": err.Error()}
		content, err = json.Marshal(data)
	}
	if err != nil {
		panic(err)
	}
	return content
}
