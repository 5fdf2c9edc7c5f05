package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// QuestionType is the input kind of a form question.
type QuestionType string

const (
	QuestionTypeText           QuestionType = "text"
	QuestionTypeLongText       QuestionType = "long_text"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeYesNo          QuestionType = "yes_no"
	QuestionTypeRating         QuestionType = "rating"
	QuestionTypeScale          QuestionType = "scale"
)

// Bounds of the numeric question types.
const (
	RatingMin = 1
	RatingMax = 5
	ScaleMin  = 1
	ScaleMax  = 10
)

// Answer validation messages shown next to the question.
const (
	MsgFieldRequired = "This field is required"
	MsgScaleRange    = "Please select a value between 1 and 10"
	MsgRatingMissing = "Please provide a rating"
	MsgYesNo         = "Please answer yes or no"
	MsgInvalidOption = "Please choose one of the listed options"
)

var QuestionTypes = []QuestionType{
	QuestionTypeText,
	QuestionTypeLongText,
	QuestionTypeMultipleChoice,
	QuestionTypeYesNo,
	QuestionTypeRating,
	QuestionTypeScale,
}

func (t QuestionType) IsValid() bool {
	for _, qt := range QuestionTypes {
		if qt == t {
			return true
		}
	}
	return false
}

// IsNumeric reports whether answers of this type are numbers.
func (t QuestionType) IsNumeric() bool {
	return t == QuestionTypeRating || t == QuestionTypeScale
}

// DefaultValue is the initial answer the renderer shows for a question type.
func (t QuestionType) DefaultValue() interface{} {
	switch t {
	case QuestionTypeRating:
		return 0
	case QuestionTypeScale:
		return 1
	default:
		return ""
	}
}

// Question is one ordered item of a form.
type Question struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FormID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"form_id"`
	QuestionText string       `gorm:"type:text;not null" json:"question_text"`
	QuestionType QuestionType `gorm:"type:varchar(30);not null" json:"question_type"`
	Options      StringList   `gorm:"type:jsonb" json:"options"`
	Required     bool         `gorm:"not null;default:false" json:"required"`
	OrderIndex   int          `gorm:"not null;default:0" json:"order_index"`
}

func (Question) TableName() string {
	return "questions"
}

// ValidateAnswer checks a raw answer (string or number, nil when missing)
// against the question and returns the message to show, or "" when valid.
func (q *Question) ValidateAnswer(value interface{}) string {
	if value == nil {
		value = q.QuestionType.DefaultValue()
	}

	switch q.QuestionType {
	case QuestionTypeScale:
		n, ok := toNumber(value)
		if !ok {
			return MsgScaleRange
		}
		// Blank or zero means unanswered; only required scales must be answered.
		if !q.Required && n == 0 {
			return ""
		}
		if n < ScaleMin || n > ScaleMax {
			return MsgScaleRange
		}
	case QuestionTypeRating:
		n, ok := toNumber(value)
		if !ok {
			return MsgRatingMissing
		}
		if q.Required && n == 0 {
			return MsgRatingMissing
		}
		if n != 0 && (n < RatingMin || n > RatingMax) {
			return MsgRatingMissing
		}
	default:
		s := strings.TrimSpace(CoerceAnswer(value))
		if s == "" {
			if q.Required {
				return MsgFieldRequired
			}
			return ""
		}
		if q.QuestionType == QuestionTypeYesNo && s != "yes" && s != "no" {
			return MsgYesNo
		}
		if q.QuestionType == QuestionTypeMultipleChoice && !q.Options.Contains(s) {
			return MsgInvalidOption
		}
	}
	return ""
}

// CoerceAnswer converts a raw answer into its stored string form: falsy
// values become "", numbers lose trailing zeros.
func CoerceAnswer(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return "true"
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return CoerceAnswer(float64(v))
	case int:
		return CoerceAnswer(float64(v))
	case int64:
		return CoerceAnswer(float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return v.String()
		}
		return CoerceAnswer(f)
	default:
		return fmt.Sprint(v)
	}
}

func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// StringList stores a list of strings as a JSONB array.
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (s StringList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan scan value into StringList, implements sql.Scanner interface
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB array:", value))
	}

	var result []string
	err := json.Unmarshal(bytes, &result)
	*s = StringList(result)
	return err
}

func (s StringList) Contains(value string) bool {
	for _, v := range s {
		if v == value {
			return true
		}
	}
	return false
}

// CleanOptions trims each option and drops blanks.
func CleanOptions(options []string) StringList {
	cleaned := make(StringList, 0, len(options))
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			cleaned = append(cleaned, o)
		}
	}
	return cleaned
}
