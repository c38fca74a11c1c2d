package rates

import (
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/encoding/charmap"
)

const cbrDailyURL = "http://www.cbr.ru/scripts/XML_daily.asp"

var httpClient = &http.Client{Timeout: 10 * time.Second}

type valCurs struct {
	Date    string   `xml:"Date,attr"`
	Valutes []valute `xml:"Valute"`
}

type valute struct {
	CharCode string `xml:"CharCode"`
	Nominal  int    `xml:"Nominal"`
	Value    string `xml:"Value"`
}

// GetUSDRateAPI returns the current USD/RUB rate from the Central Bank of
// Russia daily feed.
func GetUSDRateAPI(c *fiber.Ctx) error {
	resp, err := httpClient.Get(cbrDailyURL)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch exchange rate", "details": err.Error()})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.Status(502).JSON(fiber.Map{"error": "Exchange rate service unavailable"})
	}

	rate, date, err := parseUSDRate(resp.Body)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to parse exchange rate", "details": err.Error()})
	}

	return c.JSON(fiber.Map{
		"rate": rate,
		"date": date,
	})
}

// parseUSDRate decodes the CBR XML feed. The feed is windows-1251 encoded
// and uses comma decimal separators.
func parseUSDRate(r io.Reader) (float64, string, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "windows-1251") {
			return charmap.Windows1251.NewDecoder().Reader(input), nil
		}
		return input, nil
	}

	var curs valCurs
	if err := decoder.Decode(&curs); err != nil {
		return 0, "", err
	}

	for _, v := range curs.Valutes {
		if v.CharCode != "USD" {
			continue
		}
		value, err := strconv.ParseFloat(strings.Replace(v.Value, ",", ".", 1), 64)
		if err != nil {
			return 0, "", err
		}
		nominal := v.Nominal
		if nominal == 0 {
			nominal = 1
		}
		return value / float64(nominal), curs.Date, nil
	}

	return 0, "", errUSDNotFound
}

var errUSDNotFound = errors.New("USD rate not found in feed")
