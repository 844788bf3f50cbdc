// Package catalog holds the selectable values for job requirement forms.
package catalog

// MiddleCategory is a job sub-category with its minor tags.
type MiddleCategory struct {
	Name  string   `json:"name"`
	Minor []string `json:"minor"`
}

// MajorCategory is a top-level job category.
type MajorCategory struct {
	Name   string           `json:"name"`
	Middle []MiddleCategory `json:"middle"`
}

// Prefecture lists the selectable cities in a prefecture.
type Prefecture struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

var jobTypes = []MajorCategory{
	{Name: "IT・エンジニア", Middle: []MiddleCategory{
		{Name: "システムエンジニア", Minor: []string{"Webエンジニア", "インフラエンジニア", "アプリエンジニア"}},
		{Name: "プログラマー", Minor: []string{"Java", "Python", "JavaScript", "PHP"}},
		{Name: "デザイナー", Minor: []string{"Webデザイナー", "UIデザイナー", "グラフィックデザイナー"}},
	}},
	{Name: "営業・販売", Middle: []MiddleCategory{
		{Name: "営業", Minor: []string{"法人営業", "個人営業", "内勤営業", "外勤営業"}},
		{Name: "販売", Minor: []string{"店舗販売", "接客", "レジ", "商品管理"}},
		{Name: "企画・マーケティング", Minor: []string{"商品企画", "広告企画", "市場調査"}},
	}},
	{Name: "事務・オフィスワーク", Middle: []MiddleCategory{
		{Name: "一般事務", Minor: []string{"データ入力", "書類作成", "電話対応", "来客対応"}},
		{Name: "経理・財務", Minor: []string{"経理", "財務", "会計", "給与計算"}},
		{Name: "人事・総務", Minor: []string{"人事", "総務", "労務", "採用"}},
	}},
	{Name: "製造・技術", Middle: []MiddleCategory{
		{Name: "製造", Minor: []string{"組立", "検査", "梱包", "機械操作"}},
		{Name: "技術", Minor: []string{"設計", "開発", "品質管理", "保守"}},
		{Name: "物流", Minor: []string{"倉庫", "配送", "仕分け", "ピッキング"}},
	}},
	{Name: "サービス・接客", Middle: []MiddleCategory{
		{Name: "飲食", Minor: []string{"ホール", "キッチン", "バリスタ", "調理補助"}},
		{Name: "小売", Minor: []string{"レジ", "品出し", "接客", "清掃"}},
		{Name: "宿泊", Minor: []string{"フロント", "客室清掃", "ベルスタッフ"}},
	}},
	{Name: "医療・介護", Middle: []MiddleCategory{
		{Name: "医療", Minor: []string{"看護師", "医療事務", "薬剤師", "検査技師"}},
		{Name: "介護", Minor: []string{"介護士", "ヘルパー", "ケアマネージャー", "生活相談員"}},
		{Name: "福祉", Minor: []string{"保育士", "社会福祉士", "精神保健福祉士"}},
	}},
	{Name: "教育・保育", Middle: []MiddleCategory{
		{Name: "教育", Minor: []string{"講師", "塾講師", "家庭教師", "学習支援"}},
		{Name: "保育", Minor: []string{"保育士", "幼稚園教諭", "学童指導員", "ベビーシッター"}},
	}},
	{Name: "建設・土木", Middle: []MiddleCategory{
		{Name: "建設", Minor: []string{"大工", "左官", "塗装", "電気工事"}},
		{Name: "土木", Minor: []string{"土木作業", "重機操作", "測量", "現場監督"}},
	}},
}

var locations = []Prefecture{
	{Name: "東京都", Cities: []string{"千代田区", "中央区", "港区", "新宿区", "文京区", "台東区", "墨田区", "江東区", "品川区", "目黒区", "大田区", "世田谷区", "渋谷区", "中野区", "杉並区", "豊島区", "北区", "荒川区", "板橋区", "練馬区", "足立区", "葛飾区", "江戸川区"}},
	{Name: "大阪府", Cities: []string{"大阪市北区", "大阪市中央区", "大阪市西区", "大阪市天王寺区", "大阪市浪速区", "大阪市東淀川区", "堺市", "豊中市", "吹田市", "高槻市", "枚方市", "茨木市", "八尾市", "寝屋川市"}},
	{Name: "愛知県", Cities: []string{"名古屋市中区", "名古屋市東区", "名古屋市北区", "名古屋市西区", "名古屋市中村区", "名古屋市中川区", "名古屋市港区", "豊田市", "岡崎市", "一宮市", "瀬戸市", "半田市"}},
	{Name: "神奈川県", Cities: []string{"横浜市西区", "横浜市中区", "横浜市南区", "横浜市港北区", "川崎市川崎区", "川崎市幸区", "相模原市", "藤沢市", "茅ヶ崎市", "厚木市", "大和市"}},
	{Name: "埼玉県", Cities: []string{"さいたま市大宮区", "さいたま市浦和区", "さいたま市中央区", "川口市", "所沢市", "越谷市", "草加市", "春日部市", "熊谷市", "川越市"}},
	{Name: "千葉県", Cities: []string{"千葉市中央区", "千葉市花見川区", "千葉市稲毛区", "船橋市", "松戸市", "市川市", "柏市", "市原市", "八千代市", "流山市"}},
	{Name: "兵庫県", Cities: []string{"神戸市中央区", "神戸市東灘区", "神戸市灘区", "姫路市", "尼崎市", "明石市", "西宮市", "芦屋市", "伊丹市", "加古川市"}},
	{Name: "福岡県", Cities: []string{"福岡市博多区", "福岡市中央区", "福岡市南区", "北九州市小倉北区", "北九州市八幡西区", "久留米市", "飯塚市", "大牟田市", "春日市"}},
}

var skills = []string{
	"HTML/CSS", "JavaScript", "React", "Vue.js", "Angular", "Java", "Python", "PHP", "C#",
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "AWS", "Azure", "Docker", "Kubernetes", "Git",
	"Photoshop", "Illustrator", "Figma", "Sketch", "UI/UX",
	"Excel", "Word", "PowerPoint", "Access", "VBA",
	"英語", "中国語", "韓国語", "TOEIC",
	"営業経験", "接客経験", "リーダー経験", "マネジメント経験", "プロジェクト管理",
	"簿記", "会計", "税務", "人事労務", "法務",
	"マーケティング", "広告運用", "SEO", "SNS運用", "コンテンツ制作", "動画編集", "写真撮影",
}

// JobTypes returns the job category hierarchy in display order.
func JobTypes() []MajorCategory {
	out := make([]MajorCategory, len(jobTypes))
	for i, major := range jobTypes {
		middle := make([]MiddleCategory, len(major.Middle))
		for j, m := range major.Middle {
			middle[j] = MiddleCategory{Name: m.Name, Minor: append([]string(nil), m.Minor...)}
		}
		out[i] = MajorCategory{Name: major.Name, Middle: middle}
	}
	return out
}

// Locations returns the prefectures and their cities in display order.
func Locations() []Prefecture {
	out := make([]Prefecture, len(locations))
	for i, p := range locations {
		out[i] = Prefecture{Name: p.Name, Cities: append([]string(nil), p.Cities...)}
	}
	return out
}

// Skills returns the selectable skill tags.
func Skills() []string {
	return append([]string(nil), skills...)
}

// MajorNames returns the major category names in display order.
func MajorNames() []string {
	names := make([]string, len(jobTypes))
	for i, m := range jobTypes {
		names[i] = m.Name
	}
	return names
}

// PrefectureNames returns the prefecture names in display order.
func PrefectureNames() []string {
	names := make([]string, len(locations))
	for i, p := range locations {
		names[i] = p.Name
	}
	return names
}

// CitiesOf returns the cities of a prefecture, or nil if the prefecture is unknown.
func CitiesOf(prefecture string) []string {
	for _, p := range locations {
		if p.Name == prefecture {
			return append([]string(nil), p.Cities...)
		}
	}
	return nil
}

// MinorTagsOf returns the minor tags under a major/middle pair, or nil if unknown.
func MinorTagsOf(major, middle string) []string {
	for _, m := range jobTypes {
		if m.Name != major {
			continue
		}
		for _, mid := range m.Middle {
			if mid.Name == middle {
				return append([]string(nil), mid.Minor...)
			}
		}
	}
	return nil
}
