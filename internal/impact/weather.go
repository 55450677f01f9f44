// Package impact переводит погодные коды, ветер и метки серьёзности инцидентов
// в грубую трёхуровневую шкалу влияния на дорожную обстановку.
package impact

import "github.com/shenikar/traffiscan/internal/models"

// Пороговые значения видны пользователю: от них зависит текст предупреждений
const (
	rainCodeMin  = 51
	rainCodeMax  = 67
	snowCodeMin  = 71
	snowCodeMax  = 77
	stormCodeMin = 95

	// WindThresholdMph - скорость ветра, выше которой уровень поднимается на ступень
	WindThresholdMph = 25.0
)

// Тексты предупреждений
const (
	AdvisoryRain  = "Rainy conditions: reduced visibility and slippery roads"
	AdvisorySnow  = "Snow conditions: reduce speed and increase following distance"
	AdvisoryStorm = "Severe weather: consider delaying travel"
	AdvisoryWind  = "Strong crosswinds: take extra care on exposed roads and bridges"
)

// Assessment - результат классификации погоды
type Assessment struct {
	Level      models.Level
	Condition  string
	Advisories []string
}

// ClassifyWeather оценивает влияние погоды на трафик по коду WMO (Open-Meteo)
// и скорости ветра в милях в час. Неизвестные коды дают low без предупреждений.
func ClassifyWeather(code int, windMph float64) Assessment {
	a := Assessment{
		Level:      models.LevelLow,
		Condition:  Describe(code),
		Advisories: []string{},
	}

	switch {
	case code >= rainCodeMin && code <= rainCodeMax:
		a.Level = models.LevelMedium
		a.Advisories = append(a.Advisories, AdvisoryRain)
	case code >= snowCodeMin && code <= snowCodeMax:
		a.Level = models.LevelHigh
		a.Advisories = append(a.Advisories, AdvisorySnow)
	case code >= stormCodeMin:
		a.Level = models.LevelHigh
		a.Advisories = append(a.Advisories, AdvisoryStorm)
	}

	if windMph > WindThresholdMph {
		a.Level = a.Level.Escalate()
		a.Advisories = append(a.Advisories, AdvisoryWind)
	}

	return a
}

// Describe возвращает название погодных условий для кода WMO
func Describe(code int) string {
	switch {
	case code == 0:
		return "Clear Sky"
	case code == 1:
		return "Mainly Clear"
	case code == 3:
		return "Overcast"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case code >= 61 && code <= 67:
		return "Rain"
	case code >= 71 && code <= 77:
		return "Snow"
	case code >= 80 && code <= 82:
		return "Rain Showers"
	case code == 85 || code == 86:
		return "Snow Showers"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Partly Cloudy"
	}
}
