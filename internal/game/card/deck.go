package card

// Rand 抽象随机源，*math/rand/v2.Rand 天然满足该接口。
// 洗牌与摸牌合成都通过它取随机数，测试中注入确定性实现即可复现
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// DeckSize 一副标准 UNO 牌的张数
const DeckSize = 108

// Deck 定义一副牌，切片末尾为牌顶
type Deck []Card

// NewDeck 构建一副标准 108 张 UNO 牌：
// 每种颜色一张 "0"、"1"-"9" 各两张、skip/reverse/draw2 各两张，
// 外加 wild 和 wild4 各四张
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)

	for _, color := range Colors {
		deck = append(deck, Card{Color: color, Value: "0"})
		for _, v := range NumberValues[1:] {
			deck = append(deck, Card{Color: color, Value: v})
			deck = append(deck, Card{Color: color, Value: v})
		}
	}

	for _, color := range Colors {
		for range 2 {
			deck = append(deck, Card{Color: color, Value: ValueSkip})
			deck = append(deck, Card{Color: color, Value: ValueReverse})
			deck = append(deck, Card{Color: color, Value: ValueDraw2})
		}
	}

	for range 4 {
		deck = append(deck, Card{Color: Wild, Value: ValueWild})
		deck = append(deck, Card{Color: Wild, Value: ValueWild4})
	}

	return deck
}

// Shuffle 使用注入的随机源做 Fisher-Yates 洗牌
func (d Deck) Shuffle(rng Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Pop 从牌顶（切片末尾）取走一张牌
func (d *Deck) Pop() Card {
	old := *d
	c := old[len(old)-1]
	*d = old[:len(old)-1]
	return c
}

// PushBottom 把一张牌塞回牌底（切片开头）
func (d *Deck) PushBottom(c Card) {
	*d = append(Deck{c}, *d...)
}
