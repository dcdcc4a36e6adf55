package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/pixkit/handler"
	"github.com/dmitrymomot/pixkit/internal/transaction"
	"github.com/dmitrymomot/pixkit/internal/user"
	"github.com/dmitrymomot/pixkit/pkg/i18n"
	"github.com/dmitrymomot/pixkit/pkg/validator"
)

var (
	errCPFAndEmailInUse    = handler.NewHTTPError(http.StatusConflict, "cpf_and_email_in_use")
	errCPFInUse            = handler.NewHTTPError(http.StatusConflict, "cpf_in_use")
	errEmailInUse          = handler.NewHTTPError(http.StatusConflict, "email_in_use")
	errInvalidCredentials  = handler.NewHTTPError(http.StatusUnauthorized, "invalid_credentials")
	errUserNotFound        = handler.NewHTTPError(http.StatusNotFound, "user_not_found")
	errTransactionNotFound = handler.NewHTTPError(http.StatusNotFound, "transaction_not_found")
	errQRCodeFailed        = handler.NewHTTPError(http.StatusInternalServerError, "qrcode_failed")
)

// domainErrors maps service sentinels to HTTP errors. Order matters:
// the combined CPF and e-mail conflict is checked before the single ones.
var domainErrors = []struct {
	target error
	http   handler.HTTPError
}{
	{user.ErrCPFAndEmailInUse, errCPFAndEmailInUse},
	{user.ErrCPFInUse, errCPFInUse},
	{user.ErrEmailInUse, errEmailInUse},
	{user.ErrInvalidCredentials, errInvalidCredentials},
	{user.ErrNotFound, errUserNotFound},
	{transaction.ErrUnknownUser, errUserNotFound},
	{transaction.ErrNotFound, errTransactionNotFound},
	{transaction.ErrQRCodeFailed, errQRCodeFailed},
}

// translateError converts service errors into the types understood by
// handler.ClassifyError. Validation failures are localized for lang.
func translateError(tr *i18n.Translator, lang string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return errors.Join(err, handler.ValidationError(tr.ValidationErrors(lang, verrs)))
	}

	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			return errors.Join(err, m.http)
		}
	}
	return err
}

func (a *API) newErrorHandler() handler.ErrorHandler[handler.Context] {
	base := handler.NewErrorHandler(a.logger,
		handler.WithMessageTranslator(func(ctx context.Context, key string) string {
			lang := i18n.GetLocale(ctx)
			if a.translator.HasTranslation(lang, "errors."+key) {
				return a.translator.T(lang, "errors."+key)
			}
			return ""
		}),
	)

	return func(ctx handler.Context, err error) {
		base(ctx, translateError(a.translator, ctx.Locale(), err))
	}
}
