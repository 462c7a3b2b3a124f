package helper

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"prompthub/logger"
	"prompthub/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/zap"
)

// ValidationDetail mirrors the shape FastAPI clients already parse.
type ValidationDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper hooks English translations and form/json field names into
// gin's validator so binding errors read like "page_size must be 50 or less".
func NewHTTPHelper() *HTTPHelper {
	h := &HTTPHelper{}

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return h
	}

	v.RegisterTagNameFunc(fieldName)

	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		logger.Log.Warn("validator translations unavailable", zap.Error(err))
		trans = nil
	}

	h.Validate = v
	h.Translator = trans
	return h
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var notFound models.ErrorNotFound
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// SendSuccess ...
// Send the payload as the whole response body.
func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendError ...
// Map a service error to its status and send it as {"detail": ...}.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		logger.Log.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"detail": err.Error()})
}

// SendValidationError ...
// Send 422 with one entry per failing field. loc is "query", "path" or "body".
func (u *HTTPHelper) SendValidationError(c *gin.Context, loc string, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": []ValidationDetail{{Loc: []string{loc}, Msg: err.Error(), Type: "value_error"}},
		})
		return
	}

	details := make([]ValidationDetail, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msg := fe.Error()
		if u.Translator != nil {
			msg = fe.Translate(u.Translator)
		}
		details = append(details, ValidationDetail{
			Loc:  []string{loc, fe.Field()},
			Msg:  msg,
			Type: fe.Tag(),
		})
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": details})
}
