package services

import (
	"math"
	"time"
)

// loveQuotes is the fixed rotation the daily quote is drawn from
var loveQuotes = []string{
	"Tình yêu không phải là nhìn nhau, mà là cùng nhau nhìn về một hướng.",
	"Được yêu là một điều may mắn, nhưng yêu người khác mới chính là hạnh phúc.",
	"Hạnh phúc lớn nhất trên đời là niềm tin vững chắc rằng chúng ta được yêu.",
	"Yêu một người là muốn chia sẻ mọi khoảnh khắc, dù buồn hay vui.",
	"Khoảng cách không thể ngăn cản hai trái tim cùng nhịp đập.",
	"Tình yêu biến những điều vô nghĩa của cuộc đời thành những gì có ý nghĩa.",
	"Chỉ cần có em, thế giới này trở nên hoàn hảo.",
	"Mỗi ngày bên em là một món quà vô giá.",
	"Tình yêu đích thực là khi bạn tìm thấy mảnh ghép hoàn hảo của đời mình.",
	"Cảm ơn đời mỗi sớm mai thức dậy, ta có thêm ngày nữa để yêu thương.",
}

// DailyQuote picks the quote for today. It is deterministic for a calendar
// day and a given start date: the day offset indexes the fixed list, so the
// quote changes daily and repeats with the list length.
func DailyQuote(today, startDate time.Time) string {
	dayOffset := int(math.Floor(today.Sub(startDate).Hours() / 24))
	if dayOffset < 0 {
		dayOffset = -dayOffset
	}
	return loveQuotes[dayOffset%len(loveQuotes)]
}
