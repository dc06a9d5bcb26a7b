package card

import "fmt"

// Color 定义牌的颜色
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Wild   Color = "wild" // 万能牌没有固有颜色
)

// Colors 四种普通颜色
var Colors = []Color{Red, Blue, Green, Yellow}

// Value 定义牌面值
type Value string

const (
	ValueSkip    Value = "skip"
	ValueReverse Value = "reverse"
	ValueDraw2   Value = "draw2"
	ValueWild    Value = "wild"
	ValueWild4   Value = "wild4"
)

// NumberValues 数字牌面值 "0"-"9"
var NumberValues = []Value{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// Card 定义一张牌。万能牌的 Color 为 Wild，出牌时可被重新着色
type Card struct {
	Color Color
	Value Value
}

func (c Card) String() string {
	return fmt.Sprintf("%s %s", c.Color, c.Value)
}

// IsWild 判断是否为万能牌（wild / wild4）
func (c Card) IsWild() bool {
	return c.Color == Wild
}

// IsNumber 判断是否为数字牌
func (c Card) IsNumber() bool {
	for _, v := range NumberValues {
		if c.Value == v {
			return true
		}
	}
	return false
}

// IsAction 判断是否为功能牌（skip/reverse/draw2/wild/wild4）
func (c Card) IsAction() bool {
	switch c.Value {
	case ValueSkip, ValueReverse, ValueDraw2, ValueWild, ValueWild4:
		return true
	}
	return false
}

// validColors 合法颜色字面量
var validColors = map[Color]bool{
	Red: true, Blue: true, Green: true, Yellow: true, Wild: true,
}

// Validate 校验牌的字面量：颜色和牌面值必须在定义域内，
// 且 Color == Wild 当且仅当 Value 为 wild/wild4
func (c Card) Validate() error {
	if !validColors[c.Color] {
		return fmt.Errorf("unknown card color %q", c.Color)
	}
	if !c.IsNumber() && !c.IsAction() {
		return fmt.Errorf("unknown card value %q", c.Value)
	}
	wildValue := c.Value == ValueWild || c.Value == ValueWild4
	if (c.Color == Wild) != wildValue {
		return fmt.Errorf("card %s: wild color and wild value must pair", c)
	}
	return nil
}

// CanPlay 判断 c 是否可以打在 top 上。
// 万能牌总是可出；其余情况按颜色或牌面值任一匹配即可。
// 注意该判断不对称：top 为万能牌不代表任意牌都能压上去。
func CanPlay(c, top Card) bool {
	if c.Color == Wild {
		return true
	}
	if c.Color == top.Color {
		return true
	}
	return c.Value == top.Value
}
