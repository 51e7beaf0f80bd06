package units

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Dimension 計量維度
type Dimension string

const (
	DimensionMass        Dimension = "mass"
	DimensionVolume      Dimension = "volume"
	DimensionCount       Dimension = "count"
	DimensionLength      Dimension = "length"
	DimensionTemperature Dimension = "temperature"
	DimensionUnknown     Dimension = "unknown"
)

// Unit 計量單位與換算係數
type Unit struct {
	Name       string
	Dimension  Dimension
	BaseFactor float64 // 換算為基準單位的係數（質量為 g，體積為 ml）
	Aliases    []string
}

// Density 食材密度，跨維度換算（質量↔體積）用
type Density struct {
	Ingredient string
	GramsPerML float64
	Notes      string
}

// ConversionResult 單位換算結果
// 換算失敗以資料表示（Success=false + ErrorMessage），不回傳 error
type ConversionResult struct {
	OriginalAmount   float64 `json:"original_amount"`
	OriginalUnit     string  `json:"original_unit"`
	ConvertedAmount  float64 `json:"converted_amount"`
	ConvertedUnit    string  `json:"converted_unit"`
	ConversionFactor float64 `json:"conversion_factor"`
	Success          bool    `json:"success"`
	ErrorMessage     string  `json:"error_message,omitempty"`
}

// Converter 食譜單位換算器
// 單位表與密度表在建構時載入，之後唯讀
type Converter struct {
	units     map[string]Unit
	densities map[string]Density
}

// NewConverter 建構換算器並載入內建單位與密度表
func NewConverter() *Converter {
	c := &Converter{
		units:     make(map[string]Unit),
		densities: make(map[string]Density),
	}

	for _, unit := range unitTable() {
		c.units[strings.ToLower(unit.Name)] = unit
		for _, alias := range unit.Aliases {
			c.units[strings.ToLower(alias)] = unit
		}
	}
	for _, density := range densityTable() {
		c.densities[strings.ToLower(density.Ingredient)] = density
	}

	return c
}

// DimensionOf 取得單位所屬維度，未知單位回傳 DimensionUnknown
func (c *Converter) DimensionOf(unit string) Dimension {
	if u, ok := c.units[normalizeUnit(unit)]; ok {
		return u.Dimension
	}
	return DimensionUnknown
}

// KnownUnit 判斷單位是否在單位表內
func (c *Converter) KnownUnit(unit string) bool {
	_, ok := c.units[normalizeUnit(unit)]
	return ok
}

// DensityFor 取得食材密度；查無資料時第二回傳值為 false
func (c *Converter) DensityFor(ingredient string) (Density, bool) {
	density, ok := c.densities[strings.ToLower(strings.TrimSpace(ingredient))]
	return density, ok
}

// Convert 在兩單位間換算數量
// 同維度直接依基準係數換算；質量↔體積需提供食材名稱以查密度
func (c *Converter) Convert(amount float64, fromUnit, toUnit, ingr string) ConversionResult {
	from := normalizeUnit(fromUnit)
	to := normalizeUnit(toUnit)

	// 相同單位不需換算
	if from == to {
		return ConversionResult{
			OriginalAmount:   amount,
			OriginalUnit:     fromUnit,
			ConvertedAmount:  amount,
			ConvertedUnit:    toUnit,
			ConversionFactor: 1.0,
			Success:          true,
		}
	}

	fromDim := c.DimensionOf(fromUnit)
	toDim := c.DimensionOf(toUnit)
	if fromDim == DimensionUnknown || toDim == DimensionUnknown {
		return c.failure(amount, fromUnit, toUnit, "unknown unit types")
	}

	if fromDim == toDim {
		return c.convertSameDimension(amount, fromUnit, toUnit)
	}

	massVolume := (fromDim == DimensionMass && toDim == DimensionVolume) ||
		(fromDim == DimensionVolume && toDim == DimensionMass)
	if massVolume {
		return c.convertCrossDimension(amount, fromUnit, toUnit, ingr)
	}

	return c.failure(amount, fromUnit, toUnit,
		fmt.Sprintf("cannot convert %s to %s", fromDim, toDim))
}

// convertSameDimension 同維度換算
func (c *Converter) convertSameDimension(amount float64, fromUnit, toUnit string) ConversionResult {
	from, ok := c.units[normalizeUnit(fromUnit)]
	if !ok {
		return c.failure(amount, fromUnit, toUnit, fmt.Sprintf("unknown unit: %s", fromUnit))
	}
	to, ok := c.units[normalizeUnit(toUnit)]
	if !ok {
		return c.failure(amount, fromUnit, toUnit, fmt.Sprintf("unknown unit: %s", toUnit))
	}
	if from.Dimension != to.Dimension {
		return c.failure(amount, fromUnit, toUnit,
			fmt.Sprintf("cannot convert %s (%s) to %s (%s)", fromUnit, from.Dimension, toUnit, to.Dimension))
	}

	factor := from.BaseFactor / to.BaseFactor
	return ConversionResult{
		OriginalAmount:   amount,
		OriginalUnit:     fromUnit,
		ConvertedAmount:  amount * factor,
		ConvertedUnit:    toUnit,
		ConversionFactor: factor,
		Success:          true,
	}
}

// convertCrossDimension 跨維度換算（質量↔體積），需要食材密度
func (c *Converter) convertCrossDimension(amount float64, fromUnit, toUnit, ingr string) ConversionResult {
	from, okFrom := c.units[normalizeUnit(fromUnit)]
	to, okTo := c.units[normalizeUnit(toUnit)]
	if !okFrom || !okTo {
		return c.failure(amount, fromUnit, toUnit, "unknown units for cross-dimension conversion")
	}

	density, ok := c.DensityFor(ingr)
	if !ok {
		return c.failure(amount, fromUnit, toUnit,
			fmt.Sprintf("no density information available for %s", ingr))
	}

	var converted float64
	switch from.Dimension {
	case DimensionMass:
		grams := amount * from.BaseFactor
		ml := grams / density.GramsPerML
		converted = ml / to.BaseFactor
	case DimensionVolume:
		ml := amount * from.BaseFactor
		grams := ml * density.GramsPerML
		converted = grams / to.BaseFactor
	default:
		return c.failure(amount, fromUnit, toUnit,
			fmt.Sprintf("cannot convert %s to %s", from.Dimension, to.Dimension))
	}

	return ConversionResult{
		OriginalAmount:   amount,
		OriginalUnit:     fromUnit,
		ConvertedAmount:  converted,
		ConvertedUnit:    toUnit,
		ConversionFactor: converted / amount,
		Success:          true,
	}
}

func (c *Converter) failure(amount float64, fromUnit, toUnit, message string) ConversionResult {
	return ConversionResult{
		OriginalAmount: amount,
		OriginalUnit:   fromUnit,
		ConvertedUnit:  toUnit,
		Success:        false,
		ErrorMessage:   message,
	}
}

var (
	amountPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(?:\s+([a-zA-Z]+))?`)
	mixedPattern  = regexp.MustCompile(`(\d+)\s+(\d+/\d+)`)
)

// fractionMap 常見分數的十進位對照
var fractionMap = map[string]string{
	"1/8": "0.125",
	"1/4": "0.25",
	"1/3": "0.333",
	"3/8": "0.375",
	"1/2": "0.5",
	"5/8": "0.625",
	"2/3": "0.667",
	"3/4": "0.75",
	"7/8": "0.875",
}

// ParseAmount 解析數量字串為（數量, 單位）
// 支援常見分數與帶分數（如 "2 1/4 cup"）；無單位時回傳空字串
// 完全無法解析時回傳 (1, 原字串) 交由呼叫端處理
func (c *Converter) ParseAmount(text string) (float64, string) {
	if text == "" {
		return 0, ""
	}

	cleaned := convertFractions(strings.ToLower(strings.TrimSpace(text)))

	match := amountPattern.FindStringSubmatch(cleaned)
	if match == nil {
		return 1, cleaned
	}

	quantity, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 1, cleaned
	}
	return quantity, match[2]
}

// convertFractions 將帶分數與分數改寫為十進位表示
func convertFractions(text string) string {
	if match := mixedPattern.FindStringSubmatch(text); match != nil {
		if decimal, ok := fractionMap[match[2]]; ok {
			whole, _ := strconv.Atoi(match[1])
			part, _ := strconv.ParseFloat(decimal, 64)
			total := float64(whole) + part
			text = strings.Replace(text, match[0], strconv.FormatFloat(total, 'g', -1, 64), 1)
		}
	}
	for fraction, decimal := range fractionMap {
		text = strings.ReplaceAll(text, fraction, decimal)
	}
	return text
}

func normalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}
