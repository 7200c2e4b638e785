package validation

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/learnhub/course-enroll/internal/model/response"
)

var validate *validator.Validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report field names as their json tag so error output matches the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func isEmptyInterface[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t == reflect.TypeOf((*any)(nil)).Elem()
}

// fieldErrors converts a validator error into the client-facing field list.
func fieldErrors(err error) []response.FieldError {
	var out []response.FieldError
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []response.FieldError{{Field: "", Message: "Invalid request payload"}}
	}
	for _, fe := range validationErrs {
		out = append(out, response.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", title(fe.Field()))
	case "email":
		return "Enter a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", title(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func abortWithFieldErrors(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, response.ValidationErrors{
		Errors: fieldErrors(err),
	})
}

// Validate binds and validates the request body (B) and uri params (P),
// storing the results in the gin context for the handler. Pass `any` for a
// slot that does not apply. Failures abort with a 400 field-error list.
func Validate[B any, P any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		// --- Body ---
		if !isEmptyInterface[B]() {
			var body B

			rawData, err := io.ReadAll(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, response.ValidationErrors{
					Errors: []response.FieldError{{Field: "", Message: "Invalid request payload"}},
				})
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewBuffer(rawData))

			if err := c.ShouldBindJSON(&body); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, response.ValidationErrors{
					Errors: []response.FieldError{{Field: "", Message: "Invalid request payload"}},
				})
				return
			}
			if err := validate.Struct(body); err != nil {
				abortWithFieldErrors(c, err)
				return
			}

			// Rewind so later middleware can still read the body.
			c.Request.Body = io.NopCloser(bytes.NewBuffer(rawData))
			c.Set("validatedBody", body)
		}

		// --- Params ---
		if !isEmptyInterface[P]() {
			var params P

			originalParams := c.Params

			if err := c.ShouldBindUri(&params); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, response.ValidationErrors{
					Errors: []response.FieldError{{Field: "", Message: "Invalid path parameter"}},
				})
				return
			}
			if err := validate.Struct(params); err != nil {
				abortWithFieldErrors(c, err)
				return
			}

			c.Params = originalParams
			c.Set("validatedParams", params)
		}

		c.Next()
	}
}
