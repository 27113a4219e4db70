package dataset

// Sample returns the built-in Mumbai market dataset.
func Sample() *Dataset {
	return &Dataset{
		Areas: []Area{
			{Name: "Bandra West", Prices: []float32{180, 185, 192, 198, 205, 215, 225, 238, 245, 252}, Growth: 15.2},
			{Name: "Andheri East", Prices: []float32{95, 98, 102, 108, 115, 122, 128, 135, 142, 148}, Growth: 12.8},
			{Name: "Powai", Prices: []float32{120, 125, 130, 138, 145, 152, 160, 168, 175, 182}, Growth: 14.1},
			{Name: "Navi Mumbai", Prices: []float32{65, 68, 72, 76, 82, 88, 95, 102, 108, 115}, Growth: 18.5},
			{Name: "Thane", Prices: []float32{55, 58, 62, 67, 73, 79, 85, 92, 98, 105}, Growth: 19.2},
			{Name: "Ghatkopar", Prices: []float32{85, 88, 92, 97, 103, 109, 116, 123, 129, 136}, Growth: 16.8},
			{Name: "Kandivali", Prices: []float32{78, 81, 85, 90, 96, 102, 109, 116, 122, 128}, Growth: 17.1},
			{Name: "Borivali", Prices: []float32{72, 75, 79, 84, 90, 96, 103, 110, 116, 122}, Growth: 18.9},
			{Name: "Malad", Prices: []float32{68, 71, 75, 80, 86, 92, 99, 106, 112, 118}, Growth: 20.2},
			{Name: "Goregaon", Prices: []float32{76, 79, 83, 88, 94, 101, 108, 115, 121, 127}, Growth: 16.9},
		},
		Landmarks: []Landmark{
			{Name: "Burj Khalifa Twin", Position: [3]float32{-20, 0, -10}, Height: 25, Type: "skyscraper", Price: "₹5.2Cr", Growth: "+15%"},
			{Name: "Palais Royale", Position: [3]float32{-15, 0, -5}, Height: 20, Type: "luxury", Price: "₹4.8Cr", Growth: "+12%"},
			{Name: "Imperial Towers", Position: [3]float32{-10, 0, 0}, Height: 18, Type: "premium", Price: "₹3.2Cr", Growth: "+10%"},
			{Name: "Lodha Park", Position: [3]float32{-5, 0, 5}, Height: 22, Type: "residential", Price: "₹2.8Cr", Growth: "+8%"},
			{Name: "Trump Tower", Position: [3]float32{0, 0, 10}, Height: 24, Type: "luxury", Price: "₹6.5Cr", Growth: "+18%"},
			{Name: "World One", Position: [3]float32{5, 0, 5}, Height: 28, Type: "skyscraper", Price: "₹7.2Cr", Growth: "+20%"},
			{Name: "Ashok Towers", Position: [3]float32{10, 0, 0}, Height: 15, Type: "premium", Price: "₹2.1Cr", Growth: "+6%"},
			{Name: "Oberoi Realty", Position: [3]float32{15, 0, -5}, Height: 19, Type: "luxury", Price: "₹4.5Cr", Growth: "+14%"},
			{Name: "Hiranandani", Position: [3]float32{20, 0, -10}, Height: 16, Type: "residential", Price: "₹1.8Cr", Growth: "+5%"},
			{Name: "Godrej Projects", Position: [3]float32{25, 0, -15}, Height: 21, Type: "premium", Price: "₹3.8Cr", Growth: "+11%"},
		},
	}
}
