package locale

import "golang.org/x/text/language"

var chineseTables = &tables{
	tag:         language.SimplifiedChinese,
	sep:         "",
	sentenceEnd: "。",
	adjectives: []string{
		"精致", "优雅", "实用", "现代", "豪华", "手工", "智能", "复古", "轻便", "经典", "小巧", "简约",
	},
	materials: []string{
		"木制", "钢制", "陶瓷", "竹制", "棉质", "大理石", "塑料", "橡胶", "丝绸", "金属", "花岗岩",
	},
	products: []string{
		"椅子", "桌子", "电脑", "键盘", "鼠标", "帽子", "手套", "鞋子", "衬衫", "裤子", "毛巾", "自行车",
		"汽车", "球", "奶酪", "沙拉",
	},
	maleFirst: []string{
		"伟", "强", "磊", "军", "洋", "勇", "杰", "涛", "明", "超", "浩然", "子轩", "宇轩", "俊杰",
	},
	femaleFirst: []string{
		"芳", "娜", "敏", "静", "丽", "艳", "娟", "霞", "秀英", "桂英", "欣怡", "梓涵", "诗涵", "雨欣",
	},
	lastNames: []string{
		"王", "李", "张", "刘", "陈", "杨", "黄", "赵", "吴", "周", "徐", "孙", "马", "朱", "胡", "郭",
		"何", "高", "林", "罗",
	},
	familyFirst: true,
	companyFormats: []string{
		"{last}氏{suffix}",
		"{last}{last}{suffix}",
	},
	companySuffixes: []string{"出版社", "文化传媒有限公司", "图书有限公司", "书局"},
	lorem: []string{
		"天", "地", "人", "山", "水", "风", "云", "花", "月", "春", "秋", "书", "文", "心", "光",
		"梦", "海", "林", "星", "雨", "时", "道", "行", "远",
	},
}
