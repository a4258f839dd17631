package middleware

import (
	"net/http"
	"os"
	"roteirizador/infra/token"
	"strings"

	"github.com/labstack/echo/v4"
)

func CheckAuthorization(handlerFunc echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {

		bearerToken := c.Request().Header.Get("Authorization")
		tokenStr := strings.Replace(bearerToken, "Bearer ", "", 1)

		maker, err := token.NewPasetoMaker(os.Getenv("SIGNATURE_STRING"))
		if err != nil {
			return c.JSON(http.StatusBadGateway, err.Error())
		}

		tokenPayload, err := maker.VerifyTokenUser(tokenStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, err.Error())
		}
		c.Set("token_id", tokenPayload.ID)
		c.Set("token_user_name", tokenPayload.Name)
		c.Set("token_user_email", tokenPayload.Email)
		c.Set("token_profile_id", tokenPayload.ProfileID)
		c.Set("token_document", tokenPayload.Document)
		c.Set("token_google_id", tokenPayload.GoogleID)
		c.Set("token_expire_at", tokenPayload.ExpiredAt)

		return handlerFunc(c)
	}
}
