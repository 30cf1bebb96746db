package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount 解析十进制金额字符串
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// ParsePositiveAmount 解析并校验为正的十进制金额
func ParsePositiveAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.Sign() <= 0 {
		return decimal.Decimal{}, false
	}
	return d, true
}

func GetTimestampMs() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}
