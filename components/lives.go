package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Stocks    int
	MaxStocks int
}

var Lives = donburi.NewComponentType[LivesData]()
