package notify

import (
	"fmt"
	"os"
	"strings"

	"shop-payout-api/internal/dto"
)

// NotifyPayoutCompleted 付款完成运营通知。
// 未配置 TELEGRAM_CHAT_ID 时静默跳过。
func NotifyPayoutCompleted(evt dto.PayoutCompletedEvent) {
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if chatID == "" {
		return
	}

	var sb strings.Builder
	sb.WriteString("*付款完成*\n")
	sb.WriteString(fmt.Sprintf("店铺: %s\n", escapeMarkdown(evt.ShopID)))
	sb.WriteString(fmt.Sprintf("流水号: %d\n", evt.RunID))
	sb.WriteString(fmt.Sprintf("付款总额: %s\n", escapeMarkdown(evt.TotalPayout)))
	sb.WriteString(fmt.Sprintf("结算笔数: %d\n", len(evt.PaymentIDs)))
	sb.WriteString(fmt.Sprintf("策略: %s", escapeMarkdown(evt.Strategy)))
	if evt.Scaled {
		sb.WriteString(" \\(scaled\\)")
	}

	NotifySendMsgToTG(chatID, sb.String())
}

// escapeMarkdown 转义 Telegram Markdown 特殊字符
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"]", "\\]",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
