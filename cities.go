package orbitalshield

// defaultCities are metropolitan areas with population and density (people/km²).
// Metro entries include their city proper.
var defaultCities = []City{
	{"Tokyo-Yokohama", 35.7, 139.7, 38000000, 4400},
	{"Jakarta", -6.2, 106.8, 35000000, 9600},
	{"Delhi", 28.6, 77.2, 33000000, 11300},
	{"Manila", 14.6, 121.0, 25700000, 15300},
	{"Shanghai", 31.2, 121.5, 24800000, 3900},
	{"São Paulo", -23.6, -46.6, 22400000, 7900},
	{"Seoul", 37.6, 126.9, 25500000, 16000},
	{"Cairo", 30.0, 31.2, 21300000, 19400},
	{"Mexico City", 19.4, -99.1, 21800000, 9600},
	{"Beijing", 39.9, 116.4, 21500000, 1300},
	{"Mumbai", 19.1, 72.9, 21000000, 32300},
	{"Osaka-Kobe", 34.7, 135.5, 18900000, 4600},
	{"Dhaka", 23.8, 90.4, 22000000, 23000},
	{"New York", 40.7, -74.0, 18800000, 4500},
	{"Karachi", 24.9, 67.1, 16800000, 24000},
	{"Buenos Aires", -34.6, -58.4, 15200000, 2600},
	{"Chongqing", 29.6, 106.5, 15400000, 1100},
	{"Istanbul", 41.0, 28.9, 15500000, 2800},
	{"Kolkata", 22.6, 88.4, 15000000, 24000},
	{"Lagos", 6.5, 3.4, 15300000, 18200},
	{"Kinshasa", -4.3, 15.3, 15000000, 1500},
	{"Tianjin", 39.1, 117.2, 14200000, 1200},
	{"Guangzhou", 23.1, 113.3, 13500000, 1800},
	{"Rio de Janeiro", -22.9, -43.2, 13300000, 5200},
	{"Lahore", 31.6, 74.3, 13100000, 6600},
	{"Bangalore", 12.9, 77.6, 13200000, 4100},
	{"Shenzhen", 22.5, 114.1, 12900000, 6500},
	{"Moscow", 55.8, 37.6, 12500000, 4900},
	{"Chennai", 13.1, 80.3, 11500000, 26900},
	{"Bogotá", 4.7, -74.1, 11000000, 4400},
	{"Paris", 48.9, 2.3, 11000000, 3900},
	{"Hyderabad", 17.4, 78.5, 10500000, 18500},
	{"Lima", -12.0, -77.0, 10900000, 3200},
	{"Bangkok", 13.8, 100.5, 10500000, 5300},
	{"Nagoya", 35.2, 136.9, 10400000, 6400},
	{"London", 51.5, -0.1, 9500000, 5700},
	{"Tehran", 35.7, 51.4, 9500000, 6800},
	{"Ho Chi Minh City", 10.8, 106.7, 9300000, 4300},
	{"Luanda", -8.8, 13.2, 8900000, 2000},
	{"Chicago", 41.9, -87.6, 9500000, 1200},
	{"Ahmedabad", 23.0, 72.6, 8800000, 12000},
	{"Kuala Lumpur", 3.1, 101.7, 8600000, 8000},
	{"Hong Kong", 22.3, 114.2, 7500000, 6800},
	{"Dongguan", 23.0, 113.8, 8300000, 3400},
	{"Hangzhou", 30.3, 120.2, 8100000, 500},
	{"Foshan", 23.0, 113.1, 7900000, 2100},
	{"Shenyang", 41.8, 123.4, 8100000, 620},
	{"Riyadh", 24.7, 46.7, 7700000, 1500},
	{"Baghdad", 33.3, 44.4, 7500000, 2000},
	{"Santiago", -33.4, -70.7, 7200000, 8600},
	{"Belo Horizonte", -19.9, -43.9, 6100000, 7200},
	{"Khartoum", 15.5, 32.5, 6100000, 7000},
	{"Johannesburg", -26.2, 28.0, 10000000, 2200},
	{"Dallas", 32.8, -96.8, 7600000, 1100},
	{"Houston", 29.8, -95.4, 7100000, 1400},
	{"Miami", 25.8, -80.2, 6200000, 4600},
	{"Toronto", 43.7, -79.4, 6200000, 4300},
	{"Madrid", 40.4, -3.7, 6700000, 5300},
	{"Philadelphia", 39.9, -75.2, 6100000, 4500},
	{"Washington DC", 38.9, -77.0, 6300000, 4300},
	{"Los Angeles", 34.1, -118.2, 13200000, 3200},
	{"Barcelona", 41.4, 2.2, 5600000, 16000},
	{"Saint Petersburg", 59.9, 30.3, 5400000, 3900},
	{"Nairobi", -1.3, 36.8, 4400000, 4500},
	{"Berlin", 52.5, 13.4, 3700000, 4100},
	{"Sydney", -33.9, 151.2, 5300000, 2100},
	{"Melbourne", -37.8, 144.9, 5100000, 510},
	{"Casablanca", 33.6, -7.6, 3800000, 9200},
	{"Cape Town", -33.9, 18.4, 4600000, 1500},
	{"Addis Ababa", 9.0, 38.7, 5000000, 5200},
	{"Dar es Salaam", -6.8, 39.3, 6700000, 3100},
	{"Vancouver", 49.3, -123.1, 2600000, 2800},
	{"Rome", 41.9, 12.5, 4300000, 2200},
	{"Prague", 50.1, 14.4, 1300000, 2600},
	{"Budapest", 47.5, 19.0, 1800000, 3500},
	{"Singapore", 1.4, 103.8, 5900000, 8400},
	{"Auckland", -36.8, 174.8, 1700000, 350},
	{"Brisbane", -27.5, 153.0, 2600000, 1800},
	{"Perth", -31.9, 115.9, 2100000, 900},
	{"Wellington", -41.3, 174.8, 400000, 1500},
	{"Christchurch", -43.5, 172.6, 400000, 900},
	{"Copenhagen", 55.7, 12.6, 2100000, 6800},
	{"Stockholm", 59.3, 18.1, 2400000, 5200},
	{"Helsinki", 60.2, 24.9, 1500000, 3000},
	{"Oslo", 59.9, 10.8, 1700000, 1700},
	{"Dublin", 53.3, -6.3, 1400000, 4600},
	{"Lisbon", 38.7, -9.1, 2900000, 6500},
	{"Geneva", 46.2, 6.1, 600000, 12800},
	{"Zurich", 47.4, 8.5, 1400000, 4700},
	{"Vienna", 48.2, 16.4, 1900000, 4600},
	{"Brussels", 50.9, 4.4, 1200000, 7500},
	{"Amsterdam", 52.4, 4.9, 2400000, 5100},
	{"Hamburg", 53.6, 10.0, 1900000, 2400},
	{"Munich", 48.1, 11.6, 2600000, 4700},
	{"Frankfurt", 50.1, 8.7, 2300000, 3000},
	{"Dubai", 25.2, 55.3, 3500000, 900},
	{"Abu Dhabi", 24.5, 54.4, 1500000, 400},
	{"Kuwait City", 29.3, 47.5, 4100000, 1900},
	{"Manama", 26.2, 50.6, 700000, 2500},
	{"Doha", 25.4, 51.2, 2400000, 1300},
	{"Muscat", 23.4, 53.8, 1600000, 300},
	{"Giza", 30.1, 31.2, 9200000, 19500},
	{"Alexandria", 31.2, 29.9, 5200000, 8900},
	{"Beirut", 33.9, 35.5, 2400000, 21000},
	{"Damascus", 33.5, 36.3, 2100000, 15800},
	{"Jerusalem", 31.8, 35.2, 1000000, 8000},
	{"Tel Aviv", 32.1, 34.8, 4300000, 7900},
	{"Amman", 32.0, 35.9, 4000000, 4200},
	{"Asunción", -25.3, -57.6, 3200000, 4600},
	{"Montevideo", -34.9, -56.2, 1700000, 2800},
	{"Caracas", 10.5, -66.9, 2900000, 4100},
	{"Medellín", 6.2, -75.6, 4000000, 7200},
	{"Quito", -0.2, -78.5, 2800000, 4400},
	{"Santa Cruz", -16.3, -63.2, 1400000, 2900},
	{"La Paz", -17.8, -63.2, 2300000, 3500},
	{"Accra", 5.6, -0.2, 4300000, 10500},
	{"Abuja", 9.1, 7.4, 3300000, 3700},
	{"Kano", 12.0, 8.5, 4100000, 7800},
	{"Durban", -29.9, 31.0, 3700000, 1600},
	{"Pretoria", -25.7, 28.2, 2900000, 3300},
	{"Kampala", 0.3, 32.6, 3300000, 16800},
	{"Kigali", -1.9, 30.1, 1300000, 1800},
	{"Tunis", 36.8, 10.2, 2300000, 6700},
	{"Algiers", 36.8, 3.1, 7800000, 15600},
	{"Lusaka", -15.4, 28.3, 3100000, 5200},
	{"Harare", -17.8, 31.1, 2100000, 4200},
}
