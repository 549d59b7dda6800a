package i18n

// Anahtarlar İngilizce metnin kendisidir; İngilizce tablo kimlik eşlemesidir.
var burmese = map[string]string{
	"Blood Supply Chain Management": "သွေးထောက်ပံ့ရေးကွင်းဆက်စီမံခန့်ခွဲမှုစနစ်",
	"Dashboard":                     "ပင်မစာမျက်နှာ",
	"Inventory":                     "စာရင်း",
	"Locations":                     "သိုလှောင်ရန်နေရာများ",
	"Transportation":                "ပို့ဆောင်ရေး",
	"Expired Blood":                 "သက်တမ်းကုန်သွေး",
	"Reports":                       "အစီရင်ခံစာများ",
	"Mobile Entry":                  "မိုဘိုင်းထည့်သွင်းမှု",
	"Total Blood Units":             "စုစုပေါင်းသွေးယူနစ်",
	"Expiring Soon":                 "သက်တမ်းကုန်ရန်နီးပါး",
	"Active Shipments":              "တက်ကြွသွေးပို့ဆောင်မှုများ",
	"Storage Locations":             "သိုလှောင်ရာနေရာများ",
	"Location Capacity":             "နေရာလုံလောက်မှုအခြေအနေ",
	"Recent Alerts":                 "မကြာသေးမီသတိပေးချက်များ",
	"No recent alerts":              "သတိပေးချက်မရှိပါ",
	"Add New Blood Unit":            "သွေးယူနစ်အသစ်ထည့်ရန်",
	"Blood Type":                    "သွေးအမျိုးအစား",
	"Product Type":                  "ထုတ်ကုန်အမျိုးအစား",
	"Donation Date":                 "လှူဒါန်းသည့်ရက်စွဲ",
	"Expiry Date":                   "သက်တမ်းကုန်ဆုံးရက်",
	"Current Location":              "လက်ရှိတည်နေရာ",
	"Temperature Zone":              "အပူချိန်ဇုန်",
	"Status":                        "အခြေအနေ",
	"Actions":                       "လုပ်ဆောင်ချက်များ",
	"Dispose":                       "စွန့်ပစ်ရန်",
	"Close":                         "ပိတ်ရန်",
	"Save":                          "သိမ်းရန်",
	"Submit":                        "တင်သွင်းရန်",
	"Cancel":                        "မလုပ်တော့",
	"Search":                        "ရှာဖွေမည်",
	"Register":                      "စာရင်းသွင်းမည်",
	"Filters":                       "စိစစ်ချက်များ",
	"All Locations":                 "နေရာအားလုံး",
	"All Types":                     "အမျိုးအစားအားလုံး",
	"Clear":                         "ရှင်းလင်းမည်",
	"Yes":                           "ဟုတ်ကဲ့",
	"No":                            "မဟုတ်ပါ",
	"Expired":                       "သက်တမ်းကုန်",
	"Critical":                      "အန္တရာယ်ရှိ",
	"Warning":                       "သတိပေးချက်",
	"Good":                          "ကောင်းမွန်",
	"Available":                     "ရရှိနိုင်",
	"Used":                          "အသုံးပြုပြီး",
	"Disposed":                      "စွန့်ပစ်ပြီး",
	"Scheduled":                     "စီစဉ်ထား",
	"In Transit":                    "ပို့ဆောင်နေ",
	"Whole Blood":                   "သွေးပြည့်ဝ",
	"RBC":                           "သွေးနီဥ",
	"Platelets":                     "သွေးဥဆဲလ်များ",
	"Plasma":                        "သွေးရည်ကြည်",
	"Blood unit added":              "သွေးယူနစ်ထည့်သွင်းပြီး",
	"Successfully saved":            "အောင်မြင်စွာသိမ်းဆည်းပြီး",
	"Error occurred":                "မှားယွင်းမှုရှိသည်",
	"No blood units found":          "သွေးယူနစ်များမတွေ့ရှိပါ",
	"Days Left":                     "ရက်ကျန်ရှိ",
	"Shipment ID":                   "ပို့ဆောင်မှုအိုင်ဒီ",
	"From":                          "မှ",
	"To":                            "သို့",
	"Code":                          "ကုဒ်",
	"Stock":                         "စတော့",
	"units":                         "ယူနစ်",
	"Contact":                       "ဆက်သွယ်ရန်",
	"Expired Blood Units":           "သက်တမ်းကုန်သွေးယူနစ်များ",
	"expired units":                 "သက်တမ်းကုန်ယူနစ်",
	"Wastage Risk":                  "သွေးဆုံးရှုံးနိုင်ခြေ",
	"Reports & Analytics":           "စာရင်းအင်းများ",
	"Report Date":                   "အစီရင်ခံသည့်ရက်စွဲ",
	"Total Units":                   "စုစုပေါင်းယူနစ်",
	"Expired Units":                 "သက်တမ်းကုန်ယူနစ်များ",
	"Wastage Rate":                  "ဆုံးရှုံးမှုနှုန်း",
	"Count":                         "အရေအတွက်",
	"Percentage":                    "ရာခိုင်နှုန်း",
	"Location":                      "တည်နေရာ",
	"Location Code":                 "နေရာကုဒ်",
	"Location Name":                 "နေရာအမည်",
	"Current Stock":                 "လက်ရှိစတော့",
	"Capacity":                      "ဆံ့နိုင်မှု",
	"Usage":                         "အသုံးပြုမှု",
	"Counted Units":                 "ရေတွက်ထားသောယူနစ်",
	"Blood ID":                      "သွေးအိုင်ဒီ",
	"Days Remaining":                "ကျန်ရှိရက်",
}
