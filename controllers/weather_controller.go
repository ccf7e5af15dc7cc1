package controllers

import (
	"net/http"

	"github.com/yaeboye/cityspark-events/applications/weather"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/labstack/echo/v4"
)

// GetWeatherController handles POST /api/weather with the same
// {success:false, error} envelope on failure as the search endpoint.
func GetWeatherController(c echo.Context) error {
	var params weather.Params
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, errorEnvelope{Success: false, Error: "Invalid request payload."})
	}

	result, err := WeatherNormalizer.GetWeather(c.Request().Context(), params)
	if err != nil {
		logger.Log.Error("[get-weather] " + err.Error())
		return c.JSON(http.StatusBadRequest, errorEnvelope{Success: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}
