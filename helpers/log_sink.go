package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"code.cloudfoundry.org/lager"
)

// TimeLogFormat adds a human-readable log_time field next to lager's
// epoch-seconds timestamp.
type TimeLogFormat struct {
	lager.LogFormat
	LogTime string `json:"log_time"`
}

func NewTimeLogFormat(log lager.LogFormat) TimeLogFormat {
	floatTime, err := strconv.ParseFloat(log.Timestamp, 64)
	if err != nil {
		floatTime = 0.0
	}
	intTime := int64(floatTime)
	tm := time.Unix(intTime, 0)
	return TimeLogFormat{
		LogTime:   time.Time.Format(tm, time.RFC3339),
		LogFormat: log,
	}
}

func (tlf TimeLogFormat) ToJSON() []byte {
	content, err := json.Marshal(tlf)
	if err != nil {
		_, ok1 := err.(*json.UnsupportedTypeError)
		_, ok2 := err.(*json.MarshalerError)
		if ok1 || ok2 {
			tlf.Data = map[string]interface{}{"lager serialisation error": err.Error(), "data_dump": fmt.Sprintf("%#v", tlf.Data)}
			content, err = json.Marshal(tlf)
		}
		if err != nil {
			panic(err)
		}
	}
	return content
}

type redactingWriterSink struct {
	writer       io.Writer
	minLogLevel  lager.LogLevel
	writeL       *sync.Mutex
	credRedacter *CredRedacter
}

// NewRedactingWriterWithURLCredSink returns a sink that masks credential-looking keys
// and userinfo embedded in URLs before the line reaches the writer.
func NewRedactingWriterWithURLCredSink(writer io.Writer, minLogLevel lager.LogLevel, keyPatterns []string, valuePatterns []string) (lager.Sink, error) {
	credRedacter, err := NewCredRedacter(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	return &redactingWriterSink{
		writer:       writer,
		minLogLevel:  minLogLevel,
		writeL:       new(sync.Mutex),
		credRedacter: credRedacter,
	}, nil
}

func (sink *redactingWriterSink) Log(log lager.LogFormat) {
	if log.LogLevel < sink.minLogLevel {
		return
	}
	timeLogFormat := NewTimeLogFormat(log)
	sink.writeL.Lock()
	v := timeLogFormat.ToJSON()
	rv := sink.credRedacter.Redact(v)
	sink.writer.Write(rv)
	sink.writer.Write([]byte("\n"))
	sink.writeL.Unlock()
}
